package controllers

import (
	"context"
	"errors"
	"net/http"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("PatientController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Patient)
	err := ctrl.decodeBody(w, r, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Create error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Create error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("PatientController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("PatientController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCount, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.FindByID(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) Search(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	query := r.URL.Query()
	request := &requests.SearchPatients{
		Sexo:         query.Get(constvars.QueryParamSexo),
		FechaIngreso: query.Get(constvars.QueryParamFechaIngreso),
		Enfermedad:   query.Get(constvars.QueryParamEnfermedad),
	}
	ctrl.Log.Info("PatientController.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Search(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Search error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCount, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := new(requests.Patient)
	err := ctrl.decodeBody(w, r, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Update error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Update(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("PatientController.Update error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PatientController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) Disable(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.Disable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.PatientUsecase.Disable(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.Disable error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *PatientController) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	limit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	err := utils.DecodeJSONBody(http.MaxBytesReader(w, r.Body, limit), dst)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err, limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
