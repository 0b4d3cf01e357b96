package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate_FastPathWithoutMarkers(t *testing.T) {
	out, err := RenderTemplate("plain prompt with no markers", nil)

	require.NoError(t, err)
	assert.Equal(t, "plain prompt with no markers", out)
}

func TestRenderTemplate_SubstitutesVariables(t *testing.T) {
	out, err := RenderTemplate("You are {{.role}}. Task: {{.task}}", map[string]any{
		"role": "a researcher",
		"task": "summarize the findings",
	})

	require.NoError(t, err)
	assert.Equal(t, "You are a researcher. Task: summarize the findings", out)
}

func TestRenderTemplate_Functions(t *testing.T) {
	out, err := RenderTemplate(
		`{{upper .role}} [{{join ", " .caps}}] {{default "none" .missing}}`,
		map[string]any{
			"role": "critic",
			"caps": []string{"review", "edit"},
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "CRITIC [review, edit] none", out)
}

func TestRenderTemplate_DataIsNotReparsed(t *testing.T) {
	out, err := RenderTemplate("Task: {{.task}}", map[string]any{
		"task": "evaluate {{.secret}} markers literally",
	})

	require.NoError(t, err)
	assert.Equal(t, "Task: evaluate {{.secret}} markers literally", out)
}

func TestRenderTemplate_ParseError(t *testing.T) {
	_, err := RenderTemplate("broken {{.task", nil)

	assert.Error(t, err)
}
