package testutil

import (
	"github.com/rjbizsolution23-wq/agi-prompt-engineering/model"
)

// ScriptedModel returns a mock generation client preloaded with the given
// replies, consumed one per call in order.
func ScriptedModel(replies ...string) *model.MockModel {
	m := model.NewMockModel("scripted")
	for _, reply := range replies {
		m.QueueResponse(reply)
	}
	return m
}
