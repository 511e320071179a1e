package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerIDLocalKey is the key under which the authenticated owner id is
// stored in Fiber's context locals.
const OwnerIDLocalKey = "owner_id"

// RequireAuth validates the Bearer token on the Authorization header and
// stores the owner id from the "uid" claim in context locals. Requests
// without a valid token are rejected with 401.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization header must be a bearer token")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}

		// JSON numbers decode as float64.
		uid, ok := claims["uid"].(float64)
		if !ok || uid <= 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "token is missing the owner id")
		}

		c.Locals(OwnerIDLocalKey, int64(uid))

		return c.Next()
	}
}

// OwnerID returns the authenticated owner id stored by RequireAuth.
// It returns 0 when the request was not authenticated.
func OwnerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(OwnerIDLocalKey).(int64)
	return id
}
