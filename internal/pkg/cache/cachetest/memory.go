// Package cachetest fornece uma implementação em memória de cache.Client para testes.
package cachetest

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"goinvest/internal/pkg/cache"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Memory é um cache.Client em memória. Err, quando definido, é devolvido por todas as operações.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	Err     error
	Now     func() time.Time
}

var _ cache.Client = (*Memory)(nil)

// NewMemory cria um cache vazio.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), Now: time.Now}
}

func (m *Memory) lookup(key string) (entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && m.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return entry{}, false
	}
	return e, true
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	e, ok := m.lookup(key)
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return e.value, nil
}

func (m *Memory) GetInt(ctx context.Context, key string) (int, error) {
	s, err := m.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	e := entry{}
	switch v := value.(type) {
	case []byte:
		e.value = string(v)
	case string:
		e.value = v
	default:
		e.value = fmt.Sprint(v)
	}
	if expiration > 0 {
		e.expiresAt = m.Now().Add(expiration)
	}
	m.entries[key] = e
	return nil
}

func (m *Memory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	e, _ := m.lookup(key)
	n, _ := strconv.ParseInt(e.value, 10, 64)
	n++
	e.value = strconv.FormatInt(n, 10)
	m.entries[key] = e
	return n, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.entries, key)
	return nil
}

func (m *Memory) Ping(context.Context) error { return m.Err }

func (m *Memory) Close() error { return nil }

// Has informa se a chave está presente e não expirada.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.lookup(key)
	return ok
}
