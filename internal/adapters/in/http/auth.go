package http

import (
	"net/http"
	"strings"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// CallerMiddleware authenticates requests with a bearer JWT (HS256) and
// stores the resulting Caller in the echo context. Token issuance lives
// outside this service; only the `user_id` and `role` claims are trusted.
func CallerMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			caller, err := callerFromToken(ctx.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing bearer token",
				})
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

func callerFromToken(header string, secret []byte) (services.Caller, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return services.Caller{}, echo.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return services.Caller{}, echo.ErrUnauthorized
	}

	rawID, _ := claims["user_id"].(string)
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return services.Caller{}, echo.ErrUnauthorized
	}

	rawRole, _ := claims["role"].(string)
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return services.Caller{}, echo.ErrUnauthorized
	}

	return services.Caller{ID: id, Role: role}, nil
}

// callerFrom returns the authenticated caller stored by CallerMiddleware.
func callerFrom(ctx echo.Context) services.Caller {
	caller, _ := ctx.Get(callerContextKey).(services.Caller)
	return caller
}
