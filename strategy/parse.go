package strategy

import (
	"regexp"
	"strings"
)

// numberedLine matches list lines such as "1. reason", "2) check", "3: sum".
var numberedLine = regexp.MustCompile(`^\s*(\d+)[.):]\s*(\S.*)$`)

// parseNumberedThoughts extracts the text of numbered list lines, in order.
func parseNumberedThoughts(text string) []string {
	var thoughts []string
	for _, line := range strings.Split(text, "\n") {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			thoughts = append(thoughts, strings.TrimSpace(m[2]))
		}
	}
	return thoughts
}

// answerMarkers are lead-in phrases scanned case-insensitively; the text
// after the last occurrence becomes the extracted answer.
var answerMarkers = []string{
	"final answer:",
	"answer:",
	"therefore,",
	"therefore:",
	"in conclusion,",
	"conclusion:",
}

// extractAnswer pulls the final answer out of a reasoning reply: lead-in
// phrases first, then the last sentence longer than ten characters, then
// the whole reply. Purely lexical; no model call.
func extractAnswer(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	pos, markerLen := -1, 0
	for _, marker := range answerMarkers {
		if idx := strings.LastIndex(lower, marker); idx > pos {
			pos, markerLen = idx, len(marker)
		}
	}
	if pos >= 0 {
		if candidate := strings.TrimSpace(trimmed[pos+markerLen:]); candidate != "" {
			return candidate
		}
	}

	if last := lastLongSentence(trimmed, 10); last != "" {
		return last
	}
	return trimmed
}

// lastLongSentence returns the last sentence with more than min characters.
func lastLongSentence(text string, min int) string {
	sentences := splitSentences(text)
	for i := len(sentences) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(sentences[i]); len(s) > min {
			return s
		}
	}
	return ""
}

func splitSentences(text string) []string {
	var out []string
	var sb strings.Builder
	for _, r := range text {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			out = append(out, sb.String())
			sb.Reset()
		}
	}
	if rest := strings.TrimSpace(sb.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

// parseCandidates splits a branch-generation reply into candidate lines and
// an optional ranking line. Bullet and number prefixes are stripped; at
// most max candidates are kept.
func parseCandidates(text string, max int) (candidates []string, ranking string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if upper := strings.ToUpper(line); strings.HasPrefix(upper, "RANKING") {
			if idx := strings.Index(line, ":"); idx >= 0 {
				ranking = strings.TrimSpace(line[idx+1:])
			} else {
				ranking = line
			}
			continue
		}
		if len(candidates) >= max {
			continue
		}
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			candidates = append(candidates, strings.TrimSpace(m[2]))
			continue
		}
		candidates = append(candidates, strings.TrimPrefix(strings.TrimPrefix(line, "- "), "* "))
	}
	return candidates, ranking
}

// actionSubject strips the leading action verb ("SEARCH:", "CALCULATE ...")
// from an action directive, leaving the subject text.
func actionSubject(text string) string {
	trimmed := strings.TrimSpace(text)
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		if subject := strings.TrimSpace(trimmed[idx+1:]); subject != "" {
			return subject
		}
	}
	return trimmed
}
