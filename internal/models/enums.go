package models

// UserRole identifies who is acting on a term. Roles are caller-supplied
// and trusted as-is; there is no authentication layer.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleStarosta   UserRole = "starosta"
	RoleProwadzacy UserRole = "prowadzacy"
	RoleAdmin      UserRole = "admin"
)

// TypStudiow enumerates the four study modes: stationary/non-stationary
// crossed with first/second cycle.
type TypStudiow string

const (
	StacjonarneI     TypStudiow = "stacjonarne_I"
	StacjonarneII    TypStudiow = "stacjonarne_II"
	NiestacjonarneI  TypStudiow = "niestacjonarne_I"
	NiestacjonarneII TypStudiow = "niestacjonarne_II"
)

// TermStatus captures the exam term workflow state.
type TermStatus string

const (
	TermStatusProposed TermStatus = "proposed"
	TermStatusApproved TermStatus = "approved"
	TermStatusRejected TermStatus = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s TermStatus) Terminal() bool {
	return s == TermStatusApproved || s == TermStatusRejected
}

// CanTransitionTo encodes the allowed transition table: a proposed term
// may be approved or rejected; approved and rejected are final.
func (s TermStatus) CanTransitionTo(next TermStatus) bool {
	if s != TermStatusProposed {
		return false
	}
	return next == TermStatusApproved || next == TermStatusRejected
}
