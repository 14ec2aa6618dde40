package middleware

import (
	"errors"
	"net/http"

	"quizmaster/internal/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// codeStatus lists the codes that are not server faults. STORAGE_ERROR and
// CORRUPT_DATA fall through to 500.
var codeStatus = map[domain.ErrorCode]int{
	domain.CodeNotFound:     http.StatusNotFound,
	domain.CodeValidation:   http.StatusBadRequest,
	domain.CodeUnauthorized: http.StatusUnauthorized,
	domain.CodeForbidden:    http.StatusForbidden,
	domain.CodeRateLimited:  http.StatusTooManyRequests,
}

// StatusForCode returns the HTTP status a DomainError code is answered with.
func StatusForCode(code domain.ErrorCode) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders every error returned by a route as an ErrorResponse.
// Causes are logged, never sent to the client.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return replyDomainError(c, logger, domainErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Request rejected by router",
				zap.String("path", c.Path()),
				zap.Int("status", fiberErr.Code),
				zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func replyDomainError(c *fiber.Ctx, logger *zap.Logger, domainErr *domain.DomainError) error {
	status := StatusForCode(domainErr.Code)
	log := logger.Warn
	if status >= http.StatusInternalServerError {
		log = logger.Error
	}
	log("Request failed",
		zap.String("path", c.Path()),
		zap.String("code", string(domainErr.Code)),
		zap.Int("status", status),
		zap.String("message", domainErr.Message),
		zap.Error(domainErr.Cause))

	body := ErrorResponse{
		Code:    string(domainErr.Code),
		Message: domainErr.Message,
		Status:  status,
	}
	if len(domainErr.Context) > 0 {
		body.Details = domainErr.Context
	}
	return c.Status(status).JSON(body)
}
