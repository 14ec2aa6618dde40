package middleware

import (
	"strings"

	"quizmaster/internal/domain"
	"quizmaster/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	PrincipalKey        = "principal" // Key for storing the caller in fiber.Ctx locals
)

// Protected is a middleware function that protects routes by requiring a valid JWT.
// It validates the token using the provided TokenService and stores the caller in the context.
func Protected(tokens service.TokenService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := tokens.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Debug("JWT validation error", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Token is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(PrincipalKey, domain.Principal{UserID: claims.UserID, Role: claims.Role})

		return c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. It must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    string(domain.CodeUnauthorized),
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !principal.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    string(domain.CodeForbidden),
				Message: "Admin role required",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// GetPrincipal returns the caller stored by Protected.
func GetPrincipal(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(domain.Principal)
	return principal, ok && principal.UserID != ""
}
