package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/lucsky/cuid"
)

// Memory keeps uploaded images in process memory and hands back fake URLs.
// Used in dev mode and tests; the production store is Cloudinary.
type Memory struct {
	mu     sync.Mutex
	images map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{images: make(map[string][]byte)}
}

func (m *Memory) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	ref := fmt.Sprintf("memory://%s/%s", folder, cuid.New())

	m.mu.Lock()
	m.images[ref] = raw
	m.mu.Unlock()

	return ref, nil
}

// Get returns the stored bytes for a reference, for test assertions.
func (m *Memory) Get(ref string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.images[ref]
	return raw, ok
}
