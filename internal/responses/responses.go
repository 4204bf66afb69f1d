package responses

import (
	"errors"
	"net/http"

	"maison/internal/structs"
)

const (
	SuccessCode      = http.StatusOK
	BadRequestCode   = http.StatusBadRequest
	UnauthorizedCode = http.StatusUnauthorized
	ForbiddenCode    = http.StatusForbidden
	NotFoundCode     = http.StatusNotFound
	ConflictCode     = http.StatusConflict
	RemoteErrCode    = http.StatusBadGateway
	InternalErrCode  = http.StatusInternalServerError
)

var (
	Success = structs.Response{
		Status: structs.Status{Code: SuccessCode, Message: "OK"},
	}
	BadRequest = structs.Response{
		Status: structs.Status{Code: BadRequestCode, Message: "Bad request"},
	}
	Unauthorized = structs.Response{
		Status: structs.Status{Code: UnauthorizedCode, Message: "Unauthorized"},
	}
	Forbidden = structs.Response{
		Status: structs.Status{Code: ForbiddenCode, Message: "Forbidden"},
	}
	NotFound = structs.Response{
		Status: structs.Status{Code: NotFoundCode, Message: "Not found"},
	}
	Conflict = structs.Response{
		Status: structs.Status{Code: ConflictCode, Message: "Already in progress"},
	}
	RemoteErr = structs.Response{
		Status: structs.Status{Code: RemoteErrCode, Message: "Remote service error"},
	}
	InternalErr = structs.Response{
		Status: structs.Status{Code: InternalErrCode, Message: "Internal error"},
	}
)

// FromError picks the response for a service error. The message is replaced
// with the user-facing text for validation and remote failures.
func FromError(err error) structs.Response {
	var response structs.Response
	switch {
	case errors.Is(err, structs.ErrValidation),
		errors.Is(err, structs.ErrInvalidQuantity),
		errors.Is(err, structs.ErrEmptyCart),
		errors.Is(err, structs.ErrUnknownStatus),
		errors.Is(err, structs.ErrBadRequest):
		response = BadRequest
		response.Status.Message = structs.Message(err)
	case errors.Is(err, structs.ErrUnauthenticated),
		errors.Is(err, structs.ErrInvalidSession),
		errors.Is(err, structs.ErrAuthRequired):
		response = Unauthorized
	case errors.Is(err, structs.ErrForbidden):
		response = Forbidden
	case errors.Is(err, structs.ErrNotFound):
		response = NotFound
	case errors.Is(err, structs.ErrBusy):
		response = Conflict
	case errors.Is(err, structs.ErrRemote):
		response = RemoteErr
		response.Status.Message = structs.Message(err)
	default:
		response = InternalErr
	}
	return response
}
