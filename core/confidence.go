package core

import "math"

// Per-step confidence constants. Parsed reasoning steps carry a fixed base
// confidence plus a small complexity bonus that grows with step count; the
// draft/critique/revise phases carry rising fixed confidences.
const (
	parsedStepConfidence = 0.8
	perStepBonus         = 0.05
	maxStepBonus         = 0.2

	draftConfidence    = 0.6
	critiqueConfidence = 0.7
	revisionConfidence = 0.9
)

// DeriveConfidence computes the envelope confidence as a pure projection of
// the mode and the recorded steps.
//
//   - direct, iterative, branch-select: 0.8 + min(0.05*steps, 0.2), capped
//     at 1.0 (1 step -> 0.85, 4 or more -> 1.0).
//   - draft-critique-revise: mean of the fixed phase confidences present.
//   - collaboration: fraction of successful steps.
//
// An empty step slice yields 0.
func DeriveConfidence(mode Mode, steps []StepTrace) float64 {
	if len(steps) == 0 {
		return 0
	}

	switch mode {
	case ModeDraftCritiqueRevise:
		return phaseMean(steps)
	case ModeCollaboration:
		return successFraction(steps)
	default:
		bonus := math.Min(perStepBonus*float64(len(steps)), maxStepBonus)
		return math.Min(parsedStepConfidence+bonus, 1.0)
	}
}

func phaseMean(steps []StepTrace) float64 {
	total := 0.0
	for _, s := range steps {
		switch s.Actor {
		case ActorDraft:
			total += draftConfidence
		case ActorCritique:
			total += critiqueConfidence
		case ActorRevision:
			total += revisionConfidence
		default:
			total += parsedStepConfidence
		}
	}
	return total / float64(len(steps))
}

func successFraction(steps []StepTrace) float64 {
	succeeded := 0
	for _, s := range steps {
		if s.Success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(steps))
}
