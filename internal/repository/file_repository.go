package repository

import (
	"context"
	"database/sql"
	"errors"

	"docushare-server/config"
	"docushare-server/internal/apperr"
	"docushare-server/internal/model"
	"docushare-server/internal/util"
)

type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

// Create : сохраняет метаданные нового файла
func (r *FileRepository) Create(ctx context.Context, record *model.FileRecord) error {
	query := `
	INSERT INTO files (storage_key, owner, original_name, mime_type, size_bytes, share_password)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.ExecContext(
		ctx,
		query,
		record.StorageKey,
		record.Owner,
		record.OriginalName,
		record.MimeType,
		record.SizeBytes,
		record.SharePassword,
	)
	if err != nil {
		return util.LogError("[FileRepo] ошибка вставки данных в БД", err)
	}
	return nil
}

// GetByStorageKey : ищет запись по ключу хранения
func (r *FileRepository) GetByStorageKey(ctx context.Context, storageKey string) (*model.FileRecord, error) {
	query := `
	SELECT storage_key, owner, original_name, mime_type, size_bytes, uploaded_at, share_password
	FROM files WHERE storage_key = $1
	`
	var record model.FileRecord
	err := r.GetContext(ctx, &record, query, storageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось найти файл в БД", err)
	}
	return &record, nil
}

// ListByOwner : все файлы владельца, порядок не гарантируется
func (r *FileRepository) ListByOwner(ctx context.Context, owner string) ([]model.FileRecord, error) {
	query := `
	SELECT storage_key, owner, original_name, mime_type, size_bytes, uploaded_at, share_password
	FROM files WHERE owner = $1
	`
	records := []model.FileRecord{}
	if err := r.SelectContext(ctx, &records, query, owner); err != nil {
		return nil, util.LogError("[FileRepo] не удалось получить список файлов", err)
	}
	return records, nil
}

// UpdateSharePassword : перезаписывает пароль общего доступа.
// Пустая строка снимает защиту.
func (r *FileRepository) UpdateSharePassword(ctx context.Context, storageKey, password string) error {
	query := `UPDATE files SET share_password = $2 WHERE storage_key = $1`
	res, err := r.ExecContext(ctx, query, storageKey, password)
	if err != nil {
		return util.LogError("[FileRepo] не удалось обновить пароль общего доступа", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return util.LogError("[FileRepo] не удалось проверить результат обновления", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete : удаляет запись о файле
func (r *FileRepository) Delete(ctx context.Context, storageKey string) error {
	query := `DELETE FROM files WHERE storage_key = $1`
	res, err := r.ExecContext(ctx, query, storageKey)
	if err != nil {
		return util.LogError("[FileRepo] не удалось удалить файл из БД", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return util.LogError("[FileRepo] не удалось проверить результат удаления", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
