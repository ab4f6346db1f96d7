package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/workflow"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to the HTTP status reported to the client.
// InternalGraphError is checked first because it also wraps the routing cause.
func statusOf(err error) int {
	var validation validator.ValidationErrors

	switch {
	case errors.Is(err, commands.ErrInternalGraph):
		return http.StatusInternalServerError
	case errors.As(err, &validation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbiddenRoute):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrOrderIsRejected), errors.Is(err, order.ErrOrderIsRejected):
		return http.StatusConflict
	case errors.Is(err, workflow.ErrDuplicateDefaultTransition), errors.Is(err, workflow.ErrCrossScreenTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body, logs it and counts it against operation.
// Messages of 5xx responses are replaced by the status text.
func (s *Server) fail(ctx echo.Context, operation string, status int, err error) error {
	req := ctx.Request()
	s.metrics.RequestFailed(operation, status)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(req.Context(), "Request failed",
			"operation", operation, "method", req.Method, "path", req.URL.Path, "status", status, "error", err)
		message = http.StatusText(status)
	} else {
		s.logger.WarnContext(req.Context(), "Request rejected",
			"operation", operation, "method", req.Method, "path", req.URL.Path, "status", status, "error", err)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func (s *Server) failWith(ctx echo.Context, operation string, err error) error {
	return s.fail(ctx, operation, statusOf(err), err)
}
