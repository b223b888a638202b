package storage

import (
	"context"
	"io"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const minioErrCodeNoSuchKey = "NoSuchKey"

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.FileStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// EnsureMinioBucket creates bucketName when the server does not have it yet.
func EnsureMinioBucket(ctx context.Context, minioClient *minio.Client, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	if exists {
		return nil
	}
	err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	return nil
}

func (m *minioStorage) Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) error {
	requestID := utils.GetRequestIDFromContext(ctx)

	info, err := m.MinioClient.PutObject(ctx, m.BucketName, name, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingFileNameKey, name),
		zap.Int64(constvars.LoggingFileSizeKey, info.Size),
	)
	return nil
}

func (m *minioStorage) Open(ctx context.Context, name string) (*contracts.StoredFile, error) {
	stat, err := m.MinioClient.StatObject(ctx, m.BucketName, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioErrCodeNoSuchKey {
			return nil, contracts.ErrStoredFileNotFound
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	return &contracts.StoredFile{
		Name:        name,
		ContentType: stat.ContentType,
		Size:        stat.Size,
		Content:     object,
	}, nil
}
