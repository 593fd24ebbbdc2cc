package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type Config struct {
	Secret string        `yaml:"secret" envconfig:"AUTH_SECRET" default:"bookstore-dev-secret" json:"-"`
	TTL    time.Duration `yaml:"ttl" envconfig:"AUTH_TTL" default:"24h"`
}

// Identity is the authenticated caller every workflow runs on behalf of.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Claims struct {
	Profile Identity `json:"profile"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// Issue signs an HS256 token for id, returning the token and its expiry.
func Issue(cfg Config, id Identity, now time.Time) (string, time.Time, error) {
	exp := now.Add(cfg.TTL)
	claims := &Claims{
		Profile: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "token.SignedString")
	}
	return token, exp, nil
}

func Parse(cfg Config, tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Profile.Email == "" || !claims.Profile.Role.Valid() {
		return Identity{}, ErrInvalidToken
	}
	return claims.Profile, nil
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
