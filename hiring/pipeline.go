package hiring

import "strings"

// Stage is a candidate's position in the hiring pipeline.
type Stage string

const (
	StageApplied    Stage = "APPLIED"
	StageScreening  Stage = "SCREENING"
	StageInterview  Stage = "INTERVIEW"
	StageBackground Stage = "BACKGROUND"
	StageOffer      Stage = "OFFER"
	StageHired      Stage = "HIRED"
	StageRejected   Stage = "REJECTED"
)

var stageOrder = [...]Stage{
	StageApplied,
	StageScreening,
	StageInterview,
	StageBackground,
	StageOffer,
	StageHired,
	StageRejected,
}

// transitions is built once and only read afterwards. Terminal stages map
// to nil.
var transitions = map[Stage][]Stage{
	StageApplied:    {StageScreening, StageRejected},
	StageScreening:  {StageInterview, StageBackground, StageRejected},
	StageInterview:  {StageBackground, StageOffer, StageRejected},
	StageBackground: {StageOffer, StageRejected},
	StageOffer:      {StageHired, StageRejected},
	StageHired:      nil,
	StageRejected:   nil,
}

// Stages returns all stages in pipeline order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])
	return out
}

// ParseStage recognises the upper-case stage names used in forms.
func ParseStage(name string) (Stage, bool) {
	s := Stage(name)
	if _, ok := transitions[s]; !ok {
		return "", false
	}
	return s, true
}

func (s Stage) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Label is the title-cased stage name, e.g. "Screening".
func (s Stage) Label() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func (s Stage) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// Next returns a copy of the stages reachable from s. Unknown and terminal
// stages have none.
func (s Stage) Next() []Stage {
	next := transitions[s]
	out := make([]Stage, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether to is a sanctioned edge out of from.
func CanTransition(from, to Stage) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transitions returns the table keyed by stage name, for views.
func Transitions() map[string][]string {
	out := make(map[string][]string, len(transitions))
	for from, next := range transitions {
		names := make([]string, 0, len(next))
		for _, s := range next {
			names = append(names, string(s))
		}
		out[string(from)] = names
	}
	return out
}
