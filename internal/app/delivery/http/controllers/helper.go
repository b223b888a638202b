package controllers

import (
	"context"
	"errors"
	"net/http"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// buildUsecaseErrorResponse reports a usecase failure, turning an expired request
// deadline into a gateway timeout.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
