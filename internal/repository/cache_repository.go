package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docushare-server/config"
	"docushare-server/internal/model"
	"docushare-server/internal/util"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetFile(ctx context.Context, record *model.FileRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return util.LogError("ошибка сериализации записи файла", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(record.StorageKey), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetFile(ctx context.Context, storageKey string) (*model.FileRecord, error) {
	val, err := r.client.Client.Get(ctx, r.key(storageKey)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения записи файла из Redis", err)
	}

	var record model.FileRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, util.LogError("ошибка десериализации записи файла из кэша", err)
	}
	return &record, nil
}

func (r *CacheRepository) DeleteFile(ctx context.Context, storageKey string) error {
	if err := r.client.Client.Del(ctx, r.key(storageKey)).Err(); err != nil {
		return util.LogError("ошибка удаления записи файла из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(storageKey string) string {
	return fmt.Sprintf("file:%s", storageKey)
}
