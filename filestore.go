package tether

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Format specifies the on-disk representation of a FileStore.
type Format int

const (
	// FormatYAML stores settings as a YAML mapping (default).
	FormatYAML Format = iota
	// FormatJSON stores settings as a JSON object.
	FormatJSON
)

// fileStoreConfig holds construction options for a FileStore.
type fileStoreConfig struct {
	format Format
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*fileStoreConfig)

// WithFormat sets the on-disk format.
func WithFormat(f Format) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.format = f
	}
}

// FileStore is a Store backed by a single YAML or JSON file. Every Set
// rewrites the file atomically (temp file plus rename); write errors are
// latched for Err and do not fail the in-memory update.
//
// FileStore is safe for concurrent use; it is an externally owned
// collaborator, not part of the single-threaded engine.
type FileStore struct {
	path   string
	format Format

	mu     sync.Mutex
	values map[string]Value
	err    error
}

// NewFileStore opens the store file at path, creating an empty store when
// the file does not exist. Unparseable content or unsupported value types
// fail construction.
func NewFileStore(path string, opts ...FileStoreOption) (*FileStore, error) {
	cfg := &fileStoreConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &FileStore{
		path:   path,
		format: cfg.format,
		values: make(map[string]Value),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}
	if err := s.decode(data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Contains reports whether the store holds an entry for key.
func (s *FileStore) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

// Get returns the value stored under key, or the invalid Value when absent.
func (s *FileStore) Get(key string) Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set writes the value under key and rewrites the backing file. A failed
// rewrite is latched for Err; the in-memory entry still updates.
func (s *FileStore) Set(key string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
	s.err = s.write()
}

// Flush rewrites the backing file from the in-memory entries.
func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = s.write()
	return s.err
}

// Err returns the error latched by the most recent Set or Flush, or nil.
func (s *FileStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Watch begins watching the backing file for modifications and returns a
// channel that receives an event per change until ctx is canceled. The
// store's own atomic rewrites also produce events; a pull triggered by one
// is a no-op because store and object already agree.
func (s *FileStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	// Watch the directory: atomic replaces drop file-level watches.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.path, err)
	}

	out := make(chan struct{})

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
			}
		}
	}()

	return out, nil
}

// decode loads entries from raw file content.
func (s *FileStore) decode(data []byte) error {
	raw := make(map[string]any)
	switch s.format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	for key, entry := range raw {
		if n, ok := entry.(json.Number); ok {
			entry = numberValue(n)
		}
		v, err := ValueOf(entry)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		s.values[key] = v
	}
	return nil
}

// numberValue maps a JSON number to int64 when integral, float64 otherwise.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, _ := n.Float64() //nolint:errcheck // Decoder guarantees a valid number
	return f
}

// write marshals the entries and atomically replaces the backing file.
// Callers must hold s.mu.
func (s *FileStore) write() error {
	raw := make(map[string]any, len(s.values))
	for key, v := range s.values {
		raw[key] = v.Interface()
	}

	var data []byte
	var err error
	switch s.format {
	case FormatJSON:
		data, err = json.MarshalIndent(raw, "", "  ")
	default:
		data, err = yaml.Marshal(raw)
	}
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
