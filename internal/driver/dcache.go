package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"codecleanup/internal/diag"
	"codecleanup/internal/engine"
	"codecleanup/internal/rules"
	"codecleanup/internal/source"
	"codecleanup/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest keys cache entries.
type Digest [32]byte

// DiskCache хранит готовые отчёты на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is what one cache entry holds. Diagnostic spans are stored
// without their file id and rebound on read.
type DiskPayload struct {
	Schema      uint16
	Status      uint8
	Sections    []CachedSection
	Diagnostics []CachedDiagnostic
}

type CachedSection struct {
	Name     string
	Findings []rules.Finding
}

type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir as the cache root.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey: H(content || registry rule ids || salt || build fingerprint).
// Any change to the enabled rules, thresholds or the binary invalidates entries.
func CacheKey(content [32]byte, reg *rules.Registry, salt string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	if reg != nil {
		ids := make([]string, 0, reg.Len())
		for _, r := range reg.Rules() {
			ids = append(ids, r.ID())
		}
		_, _ = h.Write([]byte(strings.Join(ids, ",")))
	}
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(salt))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(version.Fingerprint()))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "reports".
	return filepath.Join(c.dir, "reports", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Entries written
// by another schema version count as misses.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "reports"))
}

func reportToPayload(rep *engine.Report) *DiskPayload {
	p := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Status:   uint8(rep.Status),
		Sections: make([]CachedSection, len(rep.Sections)),
	}
	for i, s := range rep.Sections {
		p.Sections[i] = CachedSection{Name: s.Name, Findings: s.Findings}
	}
	for _, d := range rep.Diagnostics {
		p.Diagnostics = append(p.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return p
}

func payloadToReport(p *DiskPayload, file *source.File) *engine.Report {
	rep := &engine.Report{
		Path:     file.Path,
		Status:   engine.Status(p.Status),
		Sections: make([]engine.Section, len(p.Sections)),
	}
	for i, s := range p.Sections {
		rep.Sections[i] = engine.Section{Name: s.Name, Findings: s.Findings}
	}
	for _, d := range p.Diagnostics {
		rep.Diagnostics = append(rep.Diagnostics, diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary:  source.Span{File: file.ID, Start: d.Start, End: d.End},
		})
	}
	return rep
}
