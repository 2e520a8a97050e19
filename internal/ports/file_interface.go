package ports

import (
	"context"

	"docushare-server/internal/model"
)

// FileRepository : SQL слой метаданных файлов
type FileRepository interface {
	Create(ctx context.Context, record *model.FileRecord) error
	GetByStorageKey(ctx context.Context, storageKey string) (*model.FileRecord, error)
	ListByOwner(ctx context.Context, owner string) ([]model.FileRecord, error)
	UpdateSharePassword(ctx context.Context, storageKey, password string) error
	Delete(ctx context.Context, storageKey string) error
}

type FileService interface {
	Upload(ctx context.Context, owner, originalName, mimeType string, data []byte, sharePassword string) (*model.FileRecord, error)
	ListByOwner(ctx context.Context, owner string) ([]model.FileRecord, error)
	Info(ctx context.Context, storageKey string) (bool, error)
	SetSharePassword(ctx context.Context, storageKey, password string) error
	Retrieve(ctx context.Context, storageKey, password string) ([]byte, string, error)
	View(ctx context.Context, storageKey string) ([]byte, string, error)
	Delete(ctx context.Context, storageKey string) error
}
