// Package cache is a disk cache for rendered bind results, grounded
// directly on the teacher's internal/driver/dcache.go: the same
// msgpack-encoded payload written atomically via a temp file + rename,
// keyed by a content digest under $XDG_CACHE_HOME/<app>/units/<hex>.mp.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest is a SHA-256 hash of the bytes a caller keys an entry by
// (slangbind's bind command hashes the unit's name).
type Digest [sha256.Size]byte

// Sum computes the Digest of content.
func Sum(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

const schemaVersion uint16 = 1

// Payload is the cached form of one unit's bind result: just enough to
// skip re-binding an unchanged unit and reprint its prior diagnostics.
type Payload struct {
	Schema   uint16
	UnitName string
	DiagText string
	HadError bool
}

// DiskCache caches Payloads by Digest. A nil *DiskCache is valid and
// behaves as a no-op cache (every Get misses, every Put succeeds
// trivially) so callers can pass a nil cache when --no-cache is set
// without an extra branch at every call site.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a disk cache at $XDG_CACHE_HOME/<app> (or
// ~/.cache/<app> if XDG_CACHE_HOME is unset).
func Open(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put writes payload under key, replacing any prior entry atomically.
func (c *DiskCache) Put(key Digest, payload Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads the payload stored under key, reporting false if absent or
// written by an older schema.
func (c *DiskCache) Get(key Digest) (Payload, bool, error) {
	var out Payload
	if c == nil {
		return out, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, false, nil
		}
		return out, false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return out, false, err
	}
	if out.Schema != schemaVersion {
		return Payload{}, false, nil
	}
	return out, true, nil
}
