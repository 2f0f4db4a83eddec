package serverutils

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// NewJwtMiddleware guards a route group with bearer-token auth. When a redis
// client is supplied, tokens revoked at logout (keyed by jti) are rejected.
func NewJwtMiddleware(secret string, rdb *redis.Client) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
		}

		if rdb != nil {
			if jti, _ := claims["jti"].(string); jti != "" {
				c, cancel := context.WithTimeout(ctx.Context(), 2*time.Second)
				defer cancel()
				if n, err := rdb.Exists(c, RevocationKey(jti)).Result(); err == nil && n > 0 {
					return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token revoked"})
				}
			}
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("user_role", claims["role"])
		ctx.Locals("user_email", claims["email"])
		return ctx.Next()
	}
}

// RequireRole stacks on the jwt middleware for admin-only route groups.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if r, _ := ctx.Locals("user_role").(string); r != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return ctx.Next()
	}
}

// RevocationKey is shared with the auth service's logout path.
func RevocationKey(jti string) string {
	return "auth:revoked:" + jti
}
