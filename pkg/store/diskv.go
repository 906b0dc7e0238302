package store

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dotcal/pkg/date"
)

// Cache keeps rendered wallpapers. A wallpaper only changes when the day or
// the request changes, so entries are keyed by both.
type Cache interface {
	Get(key Key) ([]byte, bool)
	Put(key Key, data []byte) error
	// Purge erases every entry rendered for a day before the given one and
	// returns how many were removed.
	Purge(ctx context.Context, before date.Date) (int, error)
	Keys(ctx context.Context) []Key
}

// Key identifies one rendered wallpaper.
type Key struct {
	Day  date.Date
	Hash string
}

// KeyFor hashes the canonical query for today.
func KeyFor(today date.Date, q url.Values) Key {
	sum := md5.Sum([]byte(q.Encode()))
	return Key{Day: today, Hash: fmt.Sprintf("%x", sum[:8])}
}

// String makes `YYYY-MM-DD-hash`.
func (k Key) String() string {
	return k.Day.String() + "-" + k.Hash
}

// ParseKey reverses Key.String.
func ParseKey(s string) (Key, error) {
	i := strings.LastIndex(s, "-")
	if i < 0 {
		return Key{}, fmt.Errorf("store: malformed cache key %q", s)
	}
	d, err := date.Parse(s[:i])
	if err != nil {
		return Key{}, fmt.Errorf("store: malformed cache key %q: %w", s, err)
	}
	return Key{Day: d, Hash: s[i+1:]}, nil
}

// OpenCache returns a Cache rooted at basePath. An empty path disables
// caching.
func OpenCache(basePath string) Cache {
	if basePath == "" {
		return noCache{}
	}
	return &diskCache{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      8 * 1024 * 1024, // 8MB
	})}
}

type diskCache struct {
	d *diskv.Diskv
}

func (c *diskCache) Get(key Key) ([]byte, bool) {
	if key.Day.IsZero() || key.Hash == "" {
		return nil, false
	}
	data, err := c.d.Read(key.String())
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *diskCache) Put(key Key, data []byte) error {
	if key.Day.IsZero() || key.Hash == "" {
		return errors.New("store: incomplete cache key")
	}
	if err := c.d.Write(key.String(), data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (c *diskCache) Keys(ctx context.Context) []Key {
	keys := make([]Key, 0)
	for s := range c.d.Keys(ctx.Done()) {
		k, err := ParseKey(s)
		if err != nil {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (c *diskCache) Purge(ctx context.Context, before date.Date) (int, error) {
	n := 0
	for _, k := range c.Keys(ctx) {
		if !k.Day.Before(before) {
			continue
		}
		if err := c.d.Erase(k.String()); err != nil {
			return n, fmt.Errorf("store: erase %s: %w", k, err)
		}
		n++
	}
	return n, nil
}

type noCache struct{}

func (noCache) Get(Key) ([]byte, bool) { return nil, false }
func (noCache) Put(Key, []byte) error { return nil }
func (noCache) Purge(context.Context, date.Date) (int, error) { return 0, nil }
func (noCache) Keys(context.Context) []Key { return nil }

// keyToPathTransform stores `2026-04-10-hash` as 2026/04/10/hash.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
