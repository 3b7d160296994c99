package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/gradebook"
	"github.com/Jeevana090908/stdgrd/core/session"
)

const (
	contextTokenKey   = "sessionToken"
	contextSessionKey = "session"
)

// Claims represents the authorization claims transmitted via a JWT.
// Id holds the session ID, Subject the teacher username or student ID.
type Claims struct {
	jwt.StandardClaims
	Role session.Role `json:"role"`
}

type tokenAuth struct {
	appName    string
	signingKey []byte
	expiration time.Duration
}

func newTokenAuth(conf *core.Config) *tokenAuth {
	return &tokenAuth{
		appName:    conf.AppName,
		signingKey: []byte(conf.SecretKey),
		expiration: conf.Server.JWTExpirationDelta,
	}
}

func (a *tokenAuth) jwtConfig() middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    a.signingKey,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

func (a *tokenAuth) claims(sess session.Session) *Claims {
	now := time.Now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:       sess.ID,
			Issuer:   a.appName,
			Subject:  sess.Identity(),
			IssuedAt: now.Unix(),
		},
		Role: sess.Role,
	}
	if a.expiration > 0 {
		claims.ExpiresAt = now.Add(a.expiration).Unix()
	}
	return claims
}

// GenerateToken generates a signed JWT token string for the session.
func (a *tokenAuth) GenerateToken(sess session.Session) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, a.claims(sess))

	ss, err := token.SignedString(a.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (session.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(session.Session); ok {
		return sess, nil
	}
	return session.Session{}, errUnauthorized
}

// sessionMiddleware rejects tokens that do not name the current session.
func sessionMiddleware(svc *gradebook.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			sess, ok := svc.LookupSession(claims.Id)
			if !ok {
				return errSessionEnded
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func teacherMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := getContextSession(ctx)
			if err != nil {
				return err
			}
			if !sess.IsTeacher() {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}
