package ports

import (
	"context"

	"docushare-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetFile(ctx context.Context, record *model.FileRecord) error
	GetFile(ctx context.Context, storageKey string) (*model.FileRecord, error)
	DeleteFile(ctx context.Context, storageKey string) error
}
