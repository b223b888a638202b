package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipartMemoryLimit is how much of a multipart body is kept in memory before the
// remainder spills to temporary files.
const multipartMemoryLimit = 1 << 20

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  contracts.UploadUsecase
	InternalConfig *config.InternalConfig
}

func NewUploadController(logger *zap.Logger, uploadUsecase contracts.UploadUsecase, internalConfig *config.InternalConfig) *UploadController {
	return &UploadController{
		Log:            logger,
		UploadUsecase:  uploadUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UploadController) StoreFile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	ctrl.Log.Info("UploadController.StoreFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSize := ctrl.InternalConfig.Upload.MaxSizeInBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	err := r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		ctrl.Log.Error("UploadController.StoreFile error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestBodyTooLarge(err, maxSize))
		case errors.Is(err, http.ErrNotMultipart):
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoFileUploaded(err, constvars.UploadFormFieldName))
		default:
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File[constvars.UploadFormFieldName]
	if len(fileHeaders) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNoFileUploaded(nil, constvars.UploadFormFieldName))
		return
	}
	if len(fileHeaders) > 1 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTooManyFilesUploaded(nil, constvars.UploadFormFieldName, len(fileHeaders)))
		return
	}

	fileHeader := fileHeaders[0]
	file, err := fileHeader.Open()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotOpenUploadedFile(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	result, err := ctrl.UploadUsecase.StoreFile(ctx, file, &requests.UploadFile{
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get(constvars.HeaderContentType),
		Size:         fileHeader.Size,
	})
	if err != nil {
		ctrl.Log.Error("UploadController.StoreFile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UploadController.StoreFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, result.FileName),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *UploadController) RetrieveFile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestIDFromContext(r.Context())
	fileName := chi.URLParam(r, constvars.URLParamFileName)
	ctrl.Log.Info("UploadController.RetrieveFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	storedFile, err := ctrl.UploadUsecase.RetrieveFile(ctx, fileName)
	if err != nil {
		ctrl.Log.Error("UploadController.RetrieveFile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	defer storedFile.Content.Close()

	contentType := storedFile.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderXContentTypeOptions, constvars.ContentTypeOptionsNoSniff)
	if storedFile.Size > 0 {
		w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(storedFile.Size, 10))
	}
	w.WriteHeader(constvars.StatusOK)

	_, err = io.Copy(w, storedFile.Content)
	if err != nil {
		ctrl.Log.Error("UploadController.RetrieveFile error streaming file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Error(err),
		)
	}
}
