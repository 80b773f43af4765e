package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse maps an error to the response envelope. Internal failures are
// logged server-side and hidden behind the generic message.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	resp := Response{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		if code >= fiber.StatusInternalServerError {
			log.Errorf("%s: %v", message, err)
		} else {
			resp.Error = err.Error()
		}
	}
	return c.Status(code).JSON(resp)
}
