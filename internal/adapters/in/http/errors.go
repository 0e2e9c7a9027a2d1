package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"restaurant/internal/adapters/out/memstore"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// fail translates a domain error into the REST status code and writes the
// uniform error body.
func fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, staff.ErrStaffRemoved):
		return http.StatusGone
	case errors.Is(err, order.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, staff.ErrDuplicateStaff),
		errors.Is(err, staff.ErrStaffBusy),
		errors.Is(err, order.ErrInvalidState),
		errors.Is(err, order.ErrAlreadyFinished),
		errors.Is(err, order.ErrAgentAlreadyAssigned),
		errors.Is(err, order.ErrTakeawayNeedsNoAgent),
		errors.Is(err, services.ErrNoAgentAvailable):
		return http.StatusConflict
	case errors.Is(err, commands.ErrUnknownMenuItem),
		errors.Is(err, staff.ErrStaffOffDuty),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, memstore.ErrNoActiveTransaction),
		errors.Is(err, memstore.ErrTransactionActive):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
