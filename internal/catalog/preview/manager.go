package preview

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "menu-catalog-admin/pkg/log"
)

// maxLivePreviews bounds how many previews can be held at once. One open
// modal needs one preview; the headroom covers abandoned sessions until the
// TTL reaps them.
const maxLivePreviews = 64

// Manager owns the lifecycle of selected-image previews. An expirable LRU
// backs it so previews leaked by abandoned sessions are still released after
// the TTL instead of piling up over a long admin session.
type Manager struct {
	l     pkgLog.Logger
	dir   string
	cache *expirable.LRU[string, *Preview]
}

// NewManager creates a preview manager writing temp files under dir
// (os.TempDir when empty). ttl caps how long an unreleased preview lives.
func NewManager(l pkgLog.Logger, dir string, ttl time.Duration) *Manager {
	if dir == "" {
		dir = os.TempDir()
	}

	m := &Manager{
		l:   l,
		dir: dir,
	}
	m.cache = expirable.NewLRU[string, *Preview](maxLivePreviews, m.onEvict, ttl)
	return m
}

// Acquire writes the selected file to a temp file and returns its preview.
func (m *Manager) Acquire(ctx context.Context, filename string, content []byte) (*Preview, error) {
	f, err := os.CreateTemp(m.dir, "menu-preview-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create preview file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to close preview file: %w", err)
	}

	p := &Preview{
		token:    uuid.NewString(),
		path:     f.Name(),
		filename: filename,
	}
	m.cache.Add(p.token, p)

	m.l.Debugf(ctx, "preview %s acquired for %s", p.token, filename)
	return p, nil
}

// Release removes the preview and its temp file.
func (m *Manager) Release(ctx context.Context, p *Preview) {
	if p == nil {
		return
	}
	if err := p.Release(); err != nil && !os.IsNotExist(err) {
		m.l.Warnf(ctx, "failed to release preview %s: %v", p.token, err)
	}
	m.cache.Remove(p.token)
}

func (m *Manager) onEvict(token string, p *Preview) {
	// Reached via TTL expiry or cache pressure: the session abandoned it.
	p.Release()
}
