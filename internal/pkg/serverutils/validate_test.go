package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestValidateRequestReportsFirstFailure(t *testing.T) {
	err := ValidateRequest(loginInput{})
	require.Error(t, err)

	appErr, ok := err.(*AppError)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, appErr.Code)
	assert.Equal(t, "email is required", appErr.Message)
}

func TestValidateRequestInvalidFormat(t *testing.T) {
	err := ValidateRequest(loginInput{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "email is invalid", err.Error())
}

func TestValidateRequestPasses(t *testing.T) {
	assert.NoError(t, ValidateRequest(loginInput{Email: "a@b.dev", Password: "ok"}))
}
