package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// operatorNameKey is the context key the auth middleware stores the
// operator's display name under. Mutating assignment endpoints read it to
// stamp AssignedBy on ledger records.
const operatorNameKey = "operatorName"

// Authenticate returns middleware that requires a valid HS256 bearer token
// on the wrapped routes. The token's "name" claim (falling back to "sub")
// identifies the operator issuing the request.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return failWithStatus(ctx, http.StatusUnauthorized, "authorization header is required")
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return failWithStatus(ctx, http.StatusUnauthorized, "authorization header must use the Bearer scheme")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
				if _, isHMAC := token.Method.(*jwt.SigningMethodHMAC); !isHMAC {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return failWithStatus(ctx, http.StatusUnauthorized, "invalid or expired token")
			}

			claims, isMap := token.Claims.(jwt.MapClaims)
			if !isMap {
				return failWithStatus(ctx, http.StatusUnauthorized, "invalid token claims")
			}

			name := claimString(claims, "name")
			if name == "" {
				name = claimString(claims, "sub")
			}
			if name == "" {
				return failWithStatus(ctx, http.StatusUnauthorized, "token carries no operator identity")
			}

			ctx.Set(operatorNameKey, name)

			return next(ctx)
		}
	}
}

// operatorName returns the authenticated operator's name, or "" on routes
// that did not pass through Authenticate.
func operatorName(ctx echo.Context) string {
	name, _ := ctx.Get(operatorNameKey).(string)
	return name
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
