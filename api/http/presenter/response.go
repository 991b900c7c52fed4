package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every failed request and of plain
// acknowledgements.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a payload with an optional human readable message.
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Data(c *fiber.Ctx, status int, message string, v any) error {
	return JSON(c, status, DataResponse{Message: message, Data: v})
}
