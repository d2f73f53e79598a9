package ports

// TokenService creates and parses signed, time-limited identity tokens.
type TokenService interface {
	// Issue produces a signed token whose subject is username.
	Issue(username string) (string, error)
	// Validate fails closed: false on bad signature, malformed payload,
	// subject mismatch, or expiry.
	Validate(token, expectedUsername string) bool
	// ExtractSubject returns the subject of a correctly signed token.
	ExtractSubject(token string) (string, error)
}
