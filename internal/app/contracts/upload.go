package contracts

import (
	"context"
	"errors"
	"io"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
)

var ErrStoredFileNotFound = errors.New("stored file not found")

type UploadUsecase interface {
	StoreFile(ctx context.Context, file io.Reader, request *requests.UploadFile) (*responses.UploadFile, error)
	RetrieveFile(ctx context.Context, storedName string) (*StoredFile, error)
}

// StoredFile is an open handle on an uploaded file. The caller must close Content.
type StoredFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

// FileStorage returns ErrStoredFileNotFound from Open when nothing is stored under name.
type FileStorage interface {
	Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (*StoredFile, error)
}
