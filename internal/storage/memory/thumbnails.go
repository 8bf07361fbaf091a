package memory

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
)

// ThumbnailMemory keeps uploaded objects in process memory. Seeded courses
// reference external image URLs, which resolve to themselves.
type ThumbnailMemory struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewThumbnailMemory() *ThumbnailMemory {
	return &ThumbnailMemory{objects: make(map[string][]byte)}
}

func (s *ThumbnailMemory) UploadThumbnail(
	_ context.Context,
	courseID int64,
	filename string,
	reader io.Reader,
	_ int64,
	_ string,
) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	objectKey := fmt.Sprintf("courses/%d/thumbnail%s", courseID, ext)

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[objectKey] = data
	s.mu.Unlock()
	return objectKey, nil
}

func (s *ThumbnailMemory) GetThumbnailURL(_ context.Context, objectKey string) (string, error) {
	return objectKey, nil
}

func (s *ThumbnailMemory) DeleteThumbnail(_ context.Context, objectKey string) error {
	s.mu.Lock()
	delete(s.objects, objectKey)
	s.mu.Unlock()
	return nil
}
