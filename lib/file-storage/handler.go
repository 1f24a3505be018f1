package filestorage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/config"
	"hr-office-backend/db"
	filesdbstorage "hr-office-backend/lib/file-storage/store"
	"hr-office-backend/models"
	expenseapimodels "hr-office-backend/models/api/expense"
	dbmodels "hr-office-backend/models/db"
	s3 "hr-office-backend/s3"
)

// Максимальный размер вложения.
const MaxFileSize = 10 << 20 // 10MB

var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	"application/msword":       true,
	"application/vnd.ms-excel": true,
}

type Provider interface {
	UploadToRequest(ctx context.Context, requestID, uploadedByID string, data expenseapimodels.AttachmentData) (id string, err error)
	UploadToExpenseReport(ctx context.Context, expenseReportID, uploadedByID string, data expenseapimodels.AttachmentData) (id string, err error)
	Download(ctx context.Context, fileID string) (view expenseapimodels.AttachmentContentView, err error)
	Delete(ctx context.Context, fileID string) error
	ListByRequestID(requestID string) (list []expenseapimodels.AttachmentView, err error)
	ListByExpenseReportID(expenseReportID string) (list []expenseapimodels.AttachmentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3.Client,
		store:    filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
}

func (i impl) UploadToRequest(ctx context.Context, requestID, uploadedByID string, data expenseapimodels.AttachmentData) (id string, err error) {
	return i.upload(ctx, &requestID, nil, uploadedByID, data)
}

func (i impl) UploadToExpenseReport(ctx context.Context, expenseReportID, uploadedByID string, data expenseapimodels.AttachmentData) (id string, err error) {
	return i.upload(ctx, nil, &expenseReportID, uploadedByID, data)
}

func (i impl) upload(ctx context.Context, requestID, expenseReportID *string, uploadedByID string, data expenseapimodels.AttachmentData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	if !allowedContentTypes[data.ContentType] {
		return "", errors.Wrapf(models.ErrBadRequest, "недопустимый тип файла (%s)", data.ContentType)
	}
	content, err := base64.StdEncoding.DecodeString(data.Content)
	if err != nil {
		return "", errors.Wrap(models.ErrBadRequest, "некорректное base64 содержимое файла")
	}
	if len(content) > MaxFileSize {
		return "", errors.Wrap(models.ErrBadRequest, "размер файла превышает 10MB")
	}
	storageKey := fmt.Sprintf("attachments/%s", uuid.NewString())
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, storageKey,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: data.ContentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	rec := dbmodels.FileStorage{
		RequestID:       requestID,
		ExpenseReportID: expenseReportID,
		FileName:        data.FileName,
		ContentType:     data.ContentType,
		FileSize:        int64(len(content)),
		StorageKey:      storageKey,
		UploadedByID:    uploadedByID,
	}
	id, err = i.store.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения метаданных файла")
	}
	log.
		WithField("file_id", id).
		WithField("file_name", data.FileName).
		Info("загружено вложение")
	return id, nil
}

func (i impl) Download(ctx context.Context, fileID string) (view expenseapimodels.AttachmentContentView, err error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, errors.Wrap(models.ErrNotFound, "вложение не найдено")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.StorageKey, minio.GetObjectOptions{})
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer obj.Close()
	content, err := io.ReadAll(obj)
	if err != nil {
		return view, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	view = expenseapimodels.AttachmentContentView{
		AttachmentView: expenseapimodels.AttachmentConvert(*rec),
		Content:        base64.StdEncoding.EncodeToString(content),
	}
	return view, nil
}

func (i impl) Delete(ctx context.Context, fileID string) error {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "вложение не найдено")
	}
	err = i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.StorageKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из хранилища")
	}
	err = i.store.Delete(fileID)
	if err != nil {
		return err
	}
	log.WithField("file_id", fileID).Info("удалено вложение")
	return nil
}

func (i impl) ListByRequestID(requestID string) (list []expenseapimodels.AttachmentView, err error) {
	recList, err := i.store.ListByRequestID(requestID)
	if err != nil {
		return nil, err
	}
	result := make([]expenseapimodels.AttachmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, expenseapimodels.AttachmentConvert(rec))
	}
	return result, nil
}

func (i impl) ListByExpenseReportID(expenseReportID string) (list []expenseapimodels.AttachmentView, err error) {
	recList, err := i.store.ListByExpenseReportID(expenseReportID)
	if err != nil {
		return nil, err
	}
	result := make([]expenseapimodels.AttachmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, expenseapimodels.AttachmentConvert(rec))
	}
	return result, nil
}
