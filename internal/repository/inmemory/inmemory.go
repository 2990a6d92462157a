package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"subrewriter/internal/domain/models"
)

// InmemoryStorage keeps the named subscription sources.
type InmemoryStorage struct {
	mu   sync.RWMutex
	data map[string]models.Source
}

func NewStorage() *InmemoryStorage {
	return &InmemoryStorage{
		data: make(map[string]models.Source),
	}
}

// SourceCreate registers src. Re-registering the same URL under the same name
// stores nothing and returns the existing source with ErrExists; a different
// URL returns it with ErrConflict.
func (m *InmemoryStorage) SourceCreate(ctx context.Context, src models.Source) (models.Source, error) {
	if err := ctx.Err(); err != nil {
		return models.Source{}, err
	}

	src.Name = strings.TrimSpace(src.Name)
	src.URL = strings.TrimSpace(src.URL)
	if src.Name == "" || src.URL == "" {
		return models.Source{}, models.ErrInvalidData
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.data[src.Name]; exists {
		if existing.URL == src.URL {
			return existing, models.ErrExists
		}
		return existing, models.ErrConflict
	}

	m.data[src.Name] = src
	return src, nil
}

func (m *InmemoryStorage) SourceGetByName(ctx context.Context, name string) (models.Source, error) {
	if err := ctx.Err(); err != nil {
		return models.Source{}, err
	}

	if name == "" {
		return models.Source{}, models.ErrInvalidData
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	src, exists := m.data[name]
	if !exists {
		return models.Source{}, models.ErrUnfound
	}
	return src, nil
}

// SourceList returns all sources sorted by name.
func (m *InmemoryStorage) SourceList(ctx context.Context) ([]models.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	sources := make([]models.Source, 0, len(m.data))
	for _, src := range m.data {
		sources = append(sources, src)
	}
	m.mu.RUnlock()

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})

	return sources, nil
}

func (m *InmemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *InmemoryStorage) Close() error {
	m.mu.Lock()
	m.data = make(map[string]models.Source)
	m.mu.Unlock()
	return nil
}
