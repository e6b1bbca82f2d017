package controller

import (
	"errors"
	"net/http"
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope. Anything not
// in the taxonomy is a 500 and gets logged with its cause.
func respondError(ctx *gin.Context, err error) {
	var conflict *util.ConflictError
	switch {
	case errors.As(err, &conflict):
		util.Error(ctx, http.StatusConflict, conflict.Error())
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSchedulingConflict):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrAlreadyEnrolled),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrStructureLocked):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidTimeRange),
		errors.Is(err, util.ErrPastDate),
		errors.Is(err, util.ErrNotATrainer),
		errors.Is(err, util.ErrInvalidRole),
		errors.Is(err, util.ErrInvalidStatus):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidTransition),
		errors.Is(err, util.ErrNotYetStarted),
		errors.Is(err, util.ErrNotEligible):
		util.Error(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, util.ErrNotAssigned),
		errors.Is(err, util.ErrAccountDisabled):
		util.Forbidden(ctx)
	case errors.Is(err, service.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
