package validate

import (
	"context"
	"fmt"
	"strings"
)

// Severity grades how badly a text failed validation.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMinor
	SeverityMajor
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Verdict is the outcome of a validation check.
type Verdict struct {
	Passed     bool
	Severity   Severity
	Violations []string
}

// Validator checks text against a set of principles.
type Validator interface {
	Check(ctx context.Context, text string, principles []string) (Verdict, error)
}

// Options configure the principle validator.
type Options struct {
	// MinLength is the shortest acceptable text in characters.
	MinLength int
}

// PrincipleValidator applies lexical checks: a minimum length plus
// principles of the form "must contain: <term>" and
// "must not contain: <term>" (matched case-insensitively). Principles in
// any other form are not checkable lexically and are skipped.
type PrincipleValidator struct {
	opts Options
}

// NewPrincipleValidator creates a validator with a default minimum length
// of 20 characters.
func NewPrincipleValidator(optFns ...func(o *Options)) *PrincipleValidator {
	opts := Options{MinLength: 20}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &PrincipleValidator{opts: opts}
}

const (
	mustContainPrefix    = "must contain:"
	mustNotContainPrefix = "must not contain:"
)

// Check validates the text. Empty text is a critical failure, text below
// the minimum length a major one. Each violated principle counts as minor;
// two or more violated principles escalate to major. The verdict severity
// is the worst grade across all checks.
func (v *PrincipleValidator) Check(ctx context.Context, text string, principles []string) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Verdict{
			Severity:   SeverityCritical,
			Violations: []string{"text is empty"},
		}, nil
	}

	var violations []string
	severity := SeverityNone

	if len(trimmed) < v.opts.MinLength {
		violations = append(violations, fmt.Sprintf("text shorter than %d characters", v.opts.MinLength))
		severity = SeverityMajor
	}

	lowerText := strings.ToLower(trimmed)
	principleViolations := 0
	for _, principle := range principles {
		rule := strings.ToLower(strings.TrimSpace(principle))
		switch {
		case strings.HasPrefix(rule, mustNotContainPrefix):
			term := strings.TrimSpace(rule[len(mustNotContainPrefix):])
			if term != "" && strings.Contains(lowerText, term) {
				violations = append(violations, fmt.Sprintf("contains forbidden term %q", term))
				principleViolations++
			}
		case strings.HasPrefix(rule, mustContainPrefix):
			term := strings.TrimSpace(rule[len(mustContainPrefix):])
			if term != "" && !strings.Contains(lowerText, term) {
				violations = append(violations, fmt.Sprintf("missing required term %q", term))
				principleViolations++
			}
		}
	}

	switch {
	case principleViolations >= 2:
		severity = maxSeverity(severity, SeverityMajor)
	case principleViolations == 1:
		severity = maxSeverity(severity, SeverityMinor)
	}

	return Verdict{
		Passed:     len(violations) == 0,
		Severity:   severity,
		Violations: violations,
	}, nil
}

func maxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}
