package redis_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/budgify/backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
)

// ExportCacheRepository stores generated XLSX workbooks in redis, base64
// encoded, so repeated export requests skip regeneration.
type ExportCacheRepository struct {
	Client *redis.Client
}

func NewExportCacheRepository(client *redis.Client) *ExportCacheRepository {
	return &ExportCacheRepository{
		Client: client,
	}
}

func (r *ExportCacheRepository) SaveExcel(key string, file *excelize.File, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf, err := file.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("serializing workbook: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	if err := r.Client.Set(ctx, key, encoded, expiration).Err(); err != nil {
		return fmt.Errorf("saving workbook to redis: %w", err)
	}

	return nil
}

// FindExcel returns nil without error on a cache miss.
func (r *ExportCacheRepository) FindExcel(key string) (*excelize.File, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workbook from redis: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding cached workbook: %w", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("opening cached workbook: %w", err)
	}

	return file, nil
}
