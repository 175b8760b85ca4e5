package serverutils

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware guards admin routes. It expects a Bearer token signed
// with the configured secret and stores the subject in ctx.Locals("username").
func JwtMiddleware(ctx *fiber.Ctx) error {
	header := ctx.Get("Authorization")
	if header == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing authorization header"))
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid authorization header"))
	}

	claims, err := ParseToken(tokenString)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	ctx.Locals("username", claims.Subject)
	return ctx.Next()
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SignToken issues a token for the given subject.
func SignToken(claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}
