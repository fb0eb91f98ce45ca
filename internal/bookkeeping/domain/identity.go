package domain

// Identity is the authenticated caller, threaded explicitly through every
// service and repository call instead of living in ambient request state.
// Elevated identities may manage the shared taxonomy rows.
type Identity struct {
	UserID   string
	Elevated bool
}
