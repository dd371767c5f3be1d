package filestorage

import (
	"bytes"
	"context"
	"io"

	"ppalink-backend/config"
	"ppalink-backend/db"
	filesdbstorage "ppalink-backend/lib/file-storage/storage"
	"ppalink-backend/models"
	dbmodels "ppalink-backend/models/db"
	s3client "ppalink-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrFileNotFound = errors.New("файл не найден")

type Provider interface {
	UploadResume(ctx context.Context, candidateID, fileName, contentType string, body []byte) error
	UploadAvatar(ctx context.Context, candidateID, fileName, contentType string, body []byte) error
	// GetFile отдаёт последний загруженный файл кандидата указанного типа
	GetFile(ctx context.Context, candidateID string, fileType models.FileType) (rec *dbmodels.FileStorage, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3client.Client,
		store:    filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
}

func (i impl) UploadResume(ctx context.Context, candidateID, fileName, contentType string, body []byte) error {
	return i.upload(ctx, candidateID, fileName, contentType, models.FileTypeResume, body)
}

func (i impl) UploadAvatar(ctx context.Context, candidateID, fileName, contentType string, body []byte) error {
	return i.upload(ctx, candidateID, fileName, contentType, models.FileTypeAvatar, body)
}

func (i impl) upload(ctx context.Context, candidateID, fileName, contentType string, fileType models.FileType, body []byte) error {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("file_type", fileType)
	if len(body) == 0 {
		return errors.New("пустой файл")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := dbmodels.FileStorage{
		CandidateID: candidateID,
		FileType:    fileType,
		FileName:    fileName,
		ContentType: contentType,
	}
	id, err := i.store.SaveFile(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения данных файла")
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, id,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	logger.WithField("file_id", id).Info("файл загружен")
	return nil
}

func (i impl) GetFile(ctx context.Context, candidateID string, fileType models.FileType) (rec *dbmodels.FileStorage, body []byte, err error) {
	rec, err = i.store.GetFileByType(candidateID, fileType)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения данных файла")
	}
	if rec == nil {
		return nil, nil, ErrFileNotFound
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ID, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err = io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return rec, body, nil
}

// MakeBucket создаёт бакет приложения при старте, если его ещё нет
func MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := s3client.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s3client.Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
}
