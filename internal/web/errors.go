package web

import (
	"errors"
	"net/http"
	"strings"

	"poker-stack-go/internal/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type errorView struct {
	Status  int
	Code    string
	Message string
}

// ErrorHandler maps ledger errors to HTTP responses: JSON under /api,
// an HTML page everywhere else
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		view := errorView{
			Status:  fiber.StatusInternalServerError,
			Code:    api.ErrCodeOperationFailed,
			Message: api.GetErrorMessage(api.ErrCodeOperationFailed),
		}

		var serviceErr api.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &serviceErr):
			view.Status = api.GetHTTPStatus(serviceErr.Code)
			view.Code = serviceErr.Code
			view.Message = serviceErr.Message()
		case errors.As(err, &fiberErr):
			view.Status = fiberErr.Code
			view.Code = strings.ToUpper(strings.ReplaceAll(http.StatusText(fiberErr.Code), " ", "_"))
			view.Message = fiberErr.Message
		}

		if view.Status >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", view.Status),
				zap.Error(err))
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(view.Status).JSON(fiber.Map{
				"code":    view.Code,
				"message": view.Message,
			})
		}
		return render(c, view.Status, "error.html", view)
	}
}
