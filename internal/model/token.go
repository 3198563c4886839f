package model

// TokenManager issues and validates signed bearer tokens.
type TokenManager interface {
	Generate(role Role) (string, error)
	Verify(token string) error
}
