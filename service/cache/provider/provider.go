package provider

import (
	"errors"
	"time"

	"github.com/sitebid/goapi/base/ctx"
)

var ErrNotFound = errors.New("cache entry not found")

// Provider is a byte-level cache backend. Entries expire by ttl only;
// nothing in this service deletes explicitly.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
}
