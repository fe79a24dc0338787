package ports

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue produces a signed, time-bounded credential for subjectID.
	Issue(subjectID string) (string, error)
	// Verify returns the subject id encoded in token, or
	// domain.ErrInvalidToken when the signature, algorithm, shape or
	// expiry is not acceptable.
	Verify(token string) (string, error)
}
