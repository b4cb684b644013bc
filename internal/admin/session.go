package admin

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSessionStore persists credentials as a JSON map in a single file,
// typically ~/.flightadmin/session.json.
type FileSessionStore struct {
	path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Get(key string) (string, bool) {
	values, err := s.read()
	if err != nil {
		return "", false
	}
	value, ok := values[key]
	return value, ok && value != ""
}

func (s *FileSessionStore) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

func (s *FileSessionStore) Clear(key string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	delete(values, key)
	return s.write(values)
}

func (s *FileSessionStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileSessionStore) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemorySessionStore backs tests and one-shot invocations.
type MemorySessionStore struct {
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: map[string]string{}}
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok && value != ""
}

func (s *MemorySessionStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemorySessionStore) Clear(key string) error {
	delete(s.values, key)
	return nil
}

var (
	_ SessionStore = (*FileSessionStore)(nil)
	_ SessionStore = (*MemorySessionStore)(nil)
)
