package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"docushare-server/internal/apperr"
	"docushare-server/internal/model"
	"docushare-server/internal/ports"
	"docushare-server/internal/util"
)

type FileService struct {
	fileRepository  ports.FileRepository
	cacheRepository ports.CacheRepository
	blobStorage     ports.BlobStorage
}

func NewFileService(
	fileRepository ports.FileRepository,
	cacheRepository ports.CacheRepository,
	blobStorage ports.BlobStorage,
) *FileService {
	return &FileService{
		fileRepository:  fileRepository,
		cacheRepository: cacheRepository,
		blobStorage:     blobStorage,
	}
}

// Upload : генерирует ключ хранения, пишет содержимое в хранилище и
// сохраняет метаданные. Запись содержимого и запись метаданных не
// связаны транзакцией: если вставка в БД не удалась, содержимое остаётся
// в хранилище без записи и не реконсилируется.
func (s *FileService) Upload(ctx context.Context, owner, originalName, mimeType string, data []byte, sharePassword string) (*model.FileRecord, error) {
	if owner == "" || len(data) == 0 {
		return nil, fmt.Errorf("[FileService] владелец и файл обязательны: %w", apperr.ErrValidation)
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	record := &model.FileRecord{
		StorageKey:    util.GenerateStorageKey(originalName),
		Owner:         owner,
		OriginalName:  originalName,
		MimeType:      mimeType,
		SizeBytes:     int64(len(data)),
		SharePassword: sharePassword,
	}

	if err := s.blobStorage.PutObject(ctx, record.StorageKey, data); err != nil {
		return nil, util.LogError("[FileService] не удалось сохранить содержимое файла", err)
	}

	if err := s.fileRepository.Create(ctx, record); err != nil {
		return nil, util.LogError("[FileService] не удалось сохранить метаданные файла", err)
	}

	log.Printf("[FileService] файл %s успешно загружен (ключ %s)", record.OriginalName, record.StorageKey)
	return record, nil
}

// ListByOwner : все файлы владельца
func (s *FileService) ListByOwner(ctx context.Context, owner string) ([]model.FileRecord, error) {
	records, err := s.fileRepository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, util.LogError("[FileService] не удалось получить список файлов", err)
	}
	return records, nil
}

// Info : нужен ли пароль для получения файла
func (s *FileService) Info(ctx context.Context, storageKey string) (bool, error) {
	record, err := s.getRecord(ctx, storageKey)
	if err != nil {
		return false, err
	}
	return record.Protected(), nil
}

// SetSharePassword : перезаписывает пароль общего доступа и инвалидирует кэш.
// Пустая строка снимает защиту.
func (s *FileService) SetSharePassword(ctx context.Context, storageKey, password string) error {
	if err := s.fileRepository.UpdateSharePassword(ctx, storageKey, password); err != nil {
		return err
	}

	if err := s.cacheRepository.DeleteFile(ctx, storageKey); err != nil {
		log.Printf("[FileService] ошибка удаления записи из кэша: %v", err)
	}

	return nil
}

// Retrieve : защищённое получение файла. Сначала проверяется наличие
// записи и содержимого, затем применяется правило доступа.
// Отсутствие записи и отсутствие содержимого при живой записи
// различаются: второе возвращается как ErrContentMissing.
func (s *FileService) Retrieve(ctx context.Context, storageKey, password string) ([]byte, string, error) {
	record, err := s.getRecord(ctx, storageKey)
	if err != nil {
		return nil, "", err
	}

	data, err := s.blobStorage.GetObject(ctx, storageKey)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", apperr.ErrContentMissing
		}
		return nil, "", err
	}

	if !AuthorizeShareAccess(record, password) {
		return nil, "", apperr.ErrUnauthorized
	}

	return data, record.MimeType, nil
}

// View : безусловная отдача файла по ключу. Запись в БД не обязательна:
// проверяется только наличие содержимого. Пароль общего доступа здесь
// не проверяется, даже если он установлен.
func (s *FileService) View(ctx context.Context, storageKey string) ([]byte, string, error) {
	data, err := s.blobStorage.GetObject(ctx, storageKey)
	if err != nil {
		return nil, "", err
	}

	mimeType := ""
	if record, err := s.getRecord(ctx, storageKey); err == nil {
		mimeType = record.MimeType
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return data, mimeType, nil
}

// Delete : удаляет запись о файле, затем по возможности содержимое.
// Удаление содержимого не входит в общий результат: если запись удалена,
// а содержимое удалить не удалось, осиротевший файл остаётся на диске и
// не реконсилируется (принятый разрыв, не исправлять молча).
func (s *FileService) Delete(ctx context.Context, storageKey string) error {
	if err := s.fileRepository.Delete(ctx, storageKey); err != nil {
		return err
	}

	if err := s.cacheRepository.DeleteFile(ctx, storageKey); err != nil {
		log.Printf("[FileService] ошибка удаления записи из кэша: %v", err)
	}

	if err := s.blobStorage.DeleteObject(ctx, storageKey); err != nil {
		log.Printf("[FileService] не удалось удалить содержимое файла %s: %v", storageKey, err)
	}

	log.Printf("[FileService] файл %s успешно удален", storageKey)
	return nil
}

// getRecord : запись файла из кэша, при промахе из БД с кэшированием.
// Ошибки кэша не фатальны и только логируются.
func (s *FileService) getRecord(ctx context.Context, storageKey string) (*model.FileRecord, error) {
	record, err := s.cacheRepository.GetFile(ctx, storageKey)
	if err != nil {
		log.Printf("[FileService] ошибка кэширования: %v", err)
	}
	if record != nil {
		return record, nil
	}

	record, err = s.fileRepository.GetByStorageKey(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.SetFile(ctx, record); err != nil {
		log.Printf("[FileService] ошибка кэширования записи файла: %v", err)
	}

	return record, nil
}
