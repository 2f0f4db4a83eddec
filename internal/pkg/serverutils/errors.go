package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"landing-cms-be/internal/pkg/logger"
)

// AppError is the only error type controllers and services surface to the
// transport layer. Everything else is treated as internal.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NewReferentialError reports a dangling foreign key; same status as
// validation but the message names the missing entity.
func NewReferentialError(entity string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: entity + " not found"}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// ErrorHandlerMiddleware turns errors bubbling out of handlers into the wire
// contract: {"error": "<message>"} with the mapped status. Store constraint
// violations map to 400, anything unrecognized to a generic 500 that never
// leaks internals.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
		}

		if isConstraintViolation(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "constraint violation"})
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// Postgres class 23 = integrity constraint violation.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23"
	}
	return false
}
