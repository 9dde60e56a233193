package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mistveil/backoffice-next/internal/constant"
	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

// Auth returns a middleware requiring a valid HS256 bearer token issued by
// the account service. The authenticated user id is stored in
// ctx.Locals(constant.ContextKeyAccountID).
func Auth(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return mverr.ErrUnauthorized
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			return mverr.ErrUnauthorized
		}

		claims := jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, mverr.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			return mverr.ErrUnauthorized
		}

		ctx.Locals(constant.ContextKeyAccountID, claims.Subject)
		return ctx.Next()
	}
}
