package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

type localStorage struct {
	Dir string
	Log *zap.Logger
}

// NewLocalStorage stores uploads as plain files under dir. The directory is created on
// the first Save when it does not exist yet.
func NewLocalStorage(dir string, logger *zap.Logger) contracts.FileStorage {
	return &localStorage{
		Dir: dir,
		Log: logger,
	}
}

func (s *localStorage) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) error {
	requestID := utils.GetRequestIDFromContext(ctx)

	err := os.MkdirAll(s.Dir, 0o755)
	if err != nil {
		return exceptions.ErrStorageCreateDir(err, s.Dir)
	}

	path := filepath.Join(s.Dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return exceptions.ErrStorageWriteFile(err, name)
	}

	written, err := io.Copy(file, content)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return exceptions.ErrStorageWriteFile(err, name)
	}

	s.Log.Info("localStorage.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, name),
		zap.Int64(constvars.LoggingFileSizeKey, written),
	)
	return nil
}

func (s *localStorage) Open(ctx context.Context, name string) (*contracts.StoredFile, error) {
	path := filepath.Join(s.Dir, name)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, contracts.ErrStoredFileNotFound
		}
		return nil, exceptions.ErrStorageReadFile(err, name)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, exceptions.ErrStorageReadFile(err, name)
	}
	if info.IsDir() {
		file.Close()
		return nil, contracts.ErrStoredFileNotFound
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		file.Close()
		return nil, exceptions.ErrStorageReadFile(err, name)
	}
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		file.Close()
		return nil, exceptions.ErrStorageReadFile(err, name)
	}

	return &contracts.StoredFile{
		Name:        name,
		ContentType: mtype.String(),
		Size:        info.Size(),
		Content:     file,
	}, nil
}
