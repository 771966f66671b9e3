package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/services"
	"github.com/yungbote/smartnotes-backend/internal/utils"
)

// PreviewCache stores extraction results between a preview and the commit
// that follows it, so confirming doesn't pay for a second round of model
// calls. Entries are keyed on (recording id, updated_at): editing the
// transcript changes the key and the stale preview is never reused.
//
// The cache is best-effort. Every failure path degrades to a miss and the
// orchestrator re-runs extraction.
type PreviewCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewPreviewCache(log *logger.Logger) (*PreviewCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttlSec := utils.GetEnvAsInt("PREVIEW_CACHE_TTL_SECONDS", 600, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &PreviewCache{
		log: log.With("service", "PreviewCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSec) * time.Second,
	}, nil
}

func cacheKey(recordingID uuid.UUID, updatedAt time.Time) string {
	return fmt.Sprintf("smartify:preview:%s:%d", recordingID, updatedAt.UTC().UnixNano())
}

func (c *PreviewCache) Get(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time) (*services.ExtractionResult, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(recordingID, updatedAt)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Preview cache read failed", "recording_id", recordingID, "error", err)
		}
		return nil, false
	}
	var res services.ExtractionResult
	if err := json.Unmarshal(raw, &res); err != nil {
		c.log.Warn("Preview cache entry corrupt, treating as miss", "recording_id", recordingID, "error", err)
		return nil, false
	}
	return &res, true
}

func (c *PreviewCache) Set(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time, res *services.ExtractionResult) {
	raw, err := json.Marshal(res)
	if err != nil {
		c.log.Warn("Preview cache encode failed", "recording_id", recordingID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(recordingID, updatedAt), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Preview cache write failed", "recording_id", recordingID, "error", err)
	}
}

func (c *PreviewCache) Invalidate(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time) {
	if err := c.rdb.Del(ctx, cacheKey(recordingID, updatedAt)).Err(); err != nil {
		c.log.Warn("Preview cache delete failed", "recording_id", recordingID, "error", err)
	}
}

func (c *PreviewCache) Close() error {
	return c.rdb.Close()
}
