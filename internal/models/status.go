package models

// Status is the lifecycle state of an Application.
type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
)

// statusTransitions is the static transition table. A direct applied->hired
// is legal: a single strong candidate can be hired without a shortlist pass.
// hired and rejected are terminal.
var statusTransitions = map[Status][]Status{
	StatusApplied:     {StatusShortlisted, StatusHired, StatusRejected},
	StatusShortlisted: {StatusHired, StatusRejected},
	StatusHired:       {},
	StatusRejected:    {},
}

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether s -> next is in the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
