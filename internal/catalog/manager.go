package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Manager owns the editable catalog file. Readers get an immutable snapshot;
// imports replace the snapshot and rewrite the file atomically.
type Manager struct {
	path   string
	logger *zap.Logger

	mu      sync.RWMutex
	current *Catalog
}

// NewManager loads the catalog from path, seeding the file with the built-in
// catalog when it does not exist yet.
func NewManager(path string, logger *zap.Logger) (*Manager, error) {
	m := &Manager{path: path, logger: logger}

	cat, err := LoadFile(path)
	switch {
	case err == nil:
		m.current = cat
		logger.Info("商品目錄載入完成", zap.String("path", path), zap.Int("products", cat.Len()))
	case errors.Is(err, os.ErrNotExist):
		m.current = Default()
		if err := m.save(m.current); err != nil {
			return nil, fmt.Errorf("無法寫入預設商品目錄: %w", err)
		}
		logger.Info("以內建商品目錄初始化", zap.String("path", path), zap.Int("products", m.current.Len()))
	default:
		return nil, err
	}

	return m, nil
}

// Current returns the active catalog snapshot. The snapshot is never
// mutated after publication, so callers may hold it across a whole run.
func (m *Manager) Current() *Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Export renders the active catalog as ordered JSON.
func (m *Manager) Export() ([]byte, error) {
	return m.Current().ExportJSON()
}

// Replace parses data as a full catalog, persists it and publishes it as the
// new snapshot. On parse failure the active catalog is untouched.
func (m *Manager) Replace(data []byte) error {
	cat, err := ParseJSON(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.save(cat); err != nil {
		return err
	}
	m.current = cat
	m.logger.Info("商品目錄已更新", zap.Int("products", cat.Len()))
	return nil
}

// save writes via a temp file so a crash never leaves a truncated catalog.
func (m *Manager) save(cat *Catalog) error {
	data, err := cat.ExportJSON()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("無法建立目錄: %w", err)
		}
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("無法寫入商品目錄: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("無法更新商品目錄: %w", err)
	}
	return nil
}
