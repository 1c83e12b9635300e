package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"droscher.com/DrinkMenu/pkg/apperror"
)

const (
	DefaultRenewAfter = 5 * time.Minute

	incorrectPasswordMessage = "Incorrect password"
)

// SessionToken is a signed session. All session state lives in the token, there is no server side
// session store.
type SessionToken struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and checks session tokens. Tokens are signed with the secret key combined
// with the login password, so changing the password invalidates every outstanding session.
type TokenService struct {
	signingKey    []byte
	loginPassword []byte
	renewAfter    time.Duration
	now           func() time.Time
	parser        *jwt.Parser
}

func NewTokenService(secretKey, loginPassword string, renewAfter time.Duration) *TokenService {
	if renewAfter <= 0 {
		renewAfter = DefaultRenewAfter
	}

	return &TokenService{
		signingKey:    []byte(secretKey + "_" + loginPassword),
		loginPassword: []byte(loginPassword),
		renewAfter:    renewAfter,
		now:           time.Now,
		// expiry is checked in parse against s.now
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation()),
	}
}

// WithClock replaces the time source.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now

	return s
}

// IssueFromPassword checks the base64 encoded password and issues a token valid for one month.
// Every failure reports the same message so callers cannot tell a missing password from a wrong
// one.
func (s *TokenService) IssueFromPassword(encoded string) (*SessionToken, error) {
	password, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(encoded) == 0 {
		return nil, apperror.InvalidCredential(incorrectPasswordMessage)
	}

	if subtle.ConstantTimeCompare(password, s.loginPassword) != 1 {
		return nil, apperror.InvalidCredential(incorrectPasswordMessage)
	}

	return s.issue()
}

func (s *TokenService) Verify(token string) bool {
	_, ok := s.parse(token)

	return ok
}

// RenewIfDue returns a fresh token once the renewal window since issue has passed. It returns nil
// for tokens that are still fresh and for anything that does not verify.
func (s *TokenService) RenewIfDue(token string) *SessionToken {
	claims, ok := s.parse(token)
	if !ok || claims.IssuedAt == nil {
		return nil
	}

	if !s.now().After(claims.IssuedAt.Add(s.renewAfter)) {
		return nil
	}

	renewed, err := s.issue()
	if err != nil {
		return nil
	}

	return renewed
}

func (s *TokenService) issue() (*SessionToken, error) {
	issuedAt := jwt.NewNumericDate(s.now())
	expiresAt := jwt.NewNumericDate(oneMonthAfter(issuedAt.Time))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return nil, err
	}

	return &SessionToken{Value: signed, IssuedAt: issuedAt.Time, ExpiresAt: expiresAt.Time}, nil
}

// oneMonthAfter keeps the day of month, clamped to the last day of the following month.
func oneMonthAfter(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()

	return time.Date(year, month+1, min(day, lastDay), hour, minute, sec, t.Nanosecond(), t.Location())
}

func (s *TokenService) parse(token string) (*jwt.RegisteredClaims, bool) {
	if token == "" {
		return nil, false
	}

	claims := &jwt.RegisteredClaims{}

	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}

	if !claims.VerifyExpiresAt(s.now(), true) {
		return nil, false
	}

	return claims, true
}
