package payment

// allowedTransitions defines the valid lifecycle moves. "failed" is a
// declared terminal state reserved for an external decline path; nothing
// in this service transitions into it yet.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusCompleted, StatusFailed},
	StatusCompleted: {},
	StatusFailed:    {},
}

// CanTransition reports whether moving a payment from one status to
// another is allowed.
func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
