package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"docushare-server/internal/apperr"
	"docushare-server/internal/util"
)

// DiskStorageService : хранилище содержимого файлов в директории на диске.
// Ключ хранения является именем файла внутри директории.
type DiskStorageService struct {
	uploadDir string
}

func NewDiskStorageService(uploadDir string) (*DiskStorageService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, util.LogError("[DiskStorage] ошибка создания директории загрузок", err)
	}
	return &DiskStorageService{uploadDir: uploadDir}, nil
}

func (s *DiskStorageService) PutObject(ctx context.Context, key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return util.LogError("[DiskStorage] ошибка записи файла", err)
	}
	return nil
}

func (s *DiskStorageService) GetObject(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, util.LogError("[DiskStorage] ошибка чтения файла", err)
	}
	return data, nil
}

func (s *DiskStorageService) DeleteObject(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return util.LogError("[DiskStorage] ошибка удаления файла", err)
	}
	return nil
}

// path : ключ всегда приводится к базовому имени, чтобы нельзя было
// выйти за пределы директории загрузок через "../" в ключе.
func (s *DiskStorageService) path(key string) string {
	return filepath.Join(s.uploadDir, filepath.Base(key))
}
