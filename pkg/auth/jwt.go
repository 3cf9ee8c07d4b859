package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "kind" claim. A token is only accepted for the
// kind it was issued for.
const (
	KindAccess        = "access"
	KindRefresh       = "refresh"
	KindPasswordReset = "reset-password"
	KindEmailVerify   = "verify-email"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongKind    = errors.New("token issued for a different purpose")
)

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey  []byte
	issuer     string
	tokenExp   time.Duration
	refreshExp time.Duration
	now        func() time.Time
}

func NewJWTManager(secretKey string, tokenExp, refreshExp time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:  []byte(secretKey),
		issuer:     "telephysio",
		tokenExp:   tokenExp,
		refreshExp: refreshExp,
		now:        time.Now,
	}
}

// WithIssuer sets the iss claim of issued tokens.
func (m *JWTManager) WithIssuer(issuer string) *JWTManager {
	m.issuer = issuer
	return m
}

// WithClock replaces the time source. Tests use it to issue expired tokens.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) GetTokenDuration() time.Duration {
	return m.tokenExp
}

// GenerateToken issues a short lived access token for an authenticated user.
func (m *JWTManager) GenerateToken(userID, username, email string) (string, error) {
	return m.sign(Claims{UserID: userID, Username: username, Email: email, Kind: KindAccess}, m.tokenExp)
}

func (m *JWTManager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(Claims{UserID: userID, Kind: KindRefresh}, m.refreshExp)
}

// GenerateEmailToken issues a single-purpose token bound to an email address,
// used for password reset and email verification links.
func (m *JWTManager) GenerateEmailToken(kind, email string, ttl time.Duration) (string, error) {
	return m.sign(Claims{Email: email, Kind: kind}, ttl)
}

// ValidateToken accepts access tokens only.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, KindAccess)
}

func (m *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, KindRefresh)
}

// ValidateEmailToken returns the email a reset or verification token was issued for.
func (m *JWTManager) ValidateEmailToken(tokenString, kind string) (string, error) {
	claims, err := m.validate(tokenString, kind)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

func (m *JWTManager) sign(claims Claims, ttl time.Duration) (string, error) {
	now := m.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if claims.Subject == "" {
		claims.Subject = claims.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) validate(tokenString, kind string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind {
		return nil, ErrWrongKind
	}
	return claims, nil
}
