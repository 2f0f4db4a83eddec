package serverutils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseIdParam reads the ":id" path parameter as an unsigned integer. A
// non-numeric id is a 400, not a 404: the route matched, the value didn't.
func ParseIdParam(ctx *fiber.Ctx) (uint, error) {
	raw := ctx.Params("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, NewValidationError("id is invalid")
	}
	return uint(id), nil
}
