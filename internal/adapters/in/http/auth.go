package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorKey         = "actor"
	accessTokenQuery = "access_token"
)

var errMissingToken = errors.New("missing bearer token")

// actorClaims is the token body: the subject is the actor id.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into actors. Tokens are issued by the
// identity service; this service only verifies them.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Actor verifies the token and returns the actor it names.
func (a *Authenticator) Actor(token string) (kernel.Actor, error) {
	var claims actorClaims
	if _, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(role, id)
}

// Issue signs a token for the actor. Used by tests and local tooling.
func (a *Authenticator) Issue(actor kernel.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := actorClaims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Middleware rejects requests without a valid token. Browsers cannot set
// headers on WebSocket upgrades, so the token may also come as ?access_token=.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			actor, err := a.Actor(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", errMissingToken
		}
		return strings.TrimSpace(token), nil
	}
	if token := r.URL.Query().Get(accessTokenQuery); token != "" {
		return token, nil
	}
	return "", errMissingToken
}

func actorFrom(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}
