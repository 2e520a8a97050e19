package ports

import "context"

// BlobStorage : бинарное хранилище содержимого файлов.
// Реализации: директория на диске и S3 (выбирается конфигурацией).
// GetObject и DeleteObject возвращают apperr.ErrNotFound, если объекта нет.
type BlobStorage interface {
	PutObject(ctx context.Context, key string, data []byte) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	DeleteObject(ctx context.Context, key string) error
}
