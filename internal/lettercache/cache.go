// Package lettercache keeps rendered letter previews for a short while so
// repeated preview requests with the same input skip the template engine.
// A cache miss or an unreachable Redis is never an error: previews just get
// rebuilt.
package lettercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"schuldwijzer/internal/letter"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// Key derives a stable cache key from the raw preview request body and the
// letter date. The date is part of the key because it is rendered into the
// letter; the body is hashed, not stored, so personal data never ends up in
// key names.
func Key(body []byte, today time.Time) string {
	sum := sha256.Sum256(body)
	return "letter:preview:" + today.Format(time.DateOnly) + ":" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, key string) (*letter.Letter, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var l letter.Letter
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, false
	}

	return &l, true
}

func (c *Cache) Set(ctx context.Context, key string, l *letter.Letter) {
	raw, err := json.Marshal(l)
	if err != nil {
		return
	}

	c.client.Set(ctx, key, raw, c.ttl)
}

func (c *Cache) Close() error {
	return c.client.Close()
}
