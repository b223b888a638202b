package uploads

import (
	"context"
	"errors"
	"io"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type uploadUsecase struct {
	FileStorage contracts.FileStorage
	Log         *zap.Logger
}

func NewUploadUsecase(fileStorage contracts.FileStorage, logger *zap.Logger) contracts.UploadUsecase {
	return &uploadUsecase{
		FileStorage: fileStorage,
		Log:         logger,
	}
}

func (uc *uploadUsecase) StoreFile(ctx context.Context, file io.Reader, request *requests.UploadFile) (*responses.UploadFile, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("uploadUsecase.StoreFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, request.OriginalName),
		zap.String(constvars.LoggingContentTypeKey, request.ContentType),
		zap.Int64(constvars.LoggingFileSizeKey, request.Size),
	)

	contentType := normalizeContentType(request.ContentType)
	if !constvars.AllowedUploadMIMETypes[contentType] {
		return nil, exceptions.ErrFileTypeNotAllowed(nil, request.ContentType)
	}

	storedName := utils.GenerateStoredFileName(utils.SanitizeUploadFileName(request.OriginalName))
	err := uc.FileStorage.Save(ctx, storedName, file, request.Size, contentType)
	if err != nil {
		uc.Log.Error("uploadUsecase.StoreFile error saving file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, storedName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("uploadUsecase.StoreFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, storedName),
	)
	return &responses.UploadFile{FileName: storedName}, nil
}

// RetrieveFile only resolves names shaped like the ones StoreFile generates, so no
// client supplied path ever reaches the storage backend. Content types outside the
// upload allow-list are reported as application/octet-stream.
func (uc *uploadUsecase) RetrieveFile(ctx context.Context, storedName string) (*contracts.StoredFile, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("uploadUsecase.RetrieveFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, storedName),
	)

	if !utils.IsSafeStoredFileName(storedName) {
		return nil, exceptions.ErrInvalidStoredFileName(nil, storedName)
	}

	storedFile, err := uc.FileStorage.Open(ctx, storedName)
	if err != nil {
		if errors.Is(err, contracts.ErrStoredFileNotFound) {
			return nil, exceptions.ErrFileNotFound(err, storedName)
		}
		return nil, err
	}

	contentType := normalizeContentType(storedFile.ContentType)
	if !constvars.AllowedUploadMIMETypes[contentType] {
		uc.Log.Warn("uploadUsecase.RetrieveFile content type not allowed, serving as binary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, storedName),
			zap.String(constvars.LoggingContentTypeKey, storedFile.ContentType),
		)
		contentType = constvars.MIMEOctetStream
	}
	storedFile.ContentType = contentType
	return storedFile, nil
}

func normalizeContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
