package auth

// TokenManager issues and validates access tokens. Services depend on
// this rather than on JWTManager directly.
type TokenManager interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
