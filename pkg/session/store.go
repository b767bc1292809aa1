package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/wallgallery/util/log"
	"github.com/zalando/go-keyring"
)

// Store is a small durable key-value store for client-local state.
// Get returns "" for a missing key.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Remove(key string) error
}

// MemoryStore keeps values in process memory only.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FileStore persists values as a flat JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileStore opens the JSON file at path. A missing file starts empty.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}
	if len(raw) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		return nil, fmt.Errorf("decoding settings file %s: %w", path, err)
	}
	if fs.data == nil {
		fs.data = make(map[string]string)
	}
	return fs, nil
}

func (f *FileStore) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key]
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.saveLocked()
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.saveLocked()
}

// saveLocked writes the whole map. CALLER MUST HOLD f.mu
func (f *FileStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// KeyringStore keeps values in the OS keyring, one entry per key.
type KeyringStore struct {
	user string
}

// NewKeyringStore creates a KeyringStore scoped to the given OS user name.
func NewKeyringStore(user string) *KeyringStore {
	return &KeyringStore{user: user}
}

func (k *KeyringStore) service(key string) string {
	return keyringService + "_" + key
}

func (k *KeyringStore) Get(key string) string {
	v, err := keyring.Get(k.service(key), k.user)
	if err != nil {
		// Not found is the normal state before first login
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Printf("failed to read %s from keyring: %v", key, err)
		}
		return ""
	}
	return v
}

func (k *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(k.service(key), k.user, value); err != nil {
		return fmt.Errorf("saving %s to keyring: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Remove(key string) error {
	err := keyring.Delete(k.service(key), k.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing %s from keyring: %w", key, err)
	}
	return nil
}

// PrefsStore adapts fyne preferences, for embedding the client in a fyne app.
type PrefsStore struct {
	prefs fyne.Preferences
}

// NewPrefsStore wraps p.
func NewPrefsStore(p fyne.Preferences) *PrefsStore {
	return &PrefsStore{prefs: p}
}

func (p *PrefsStore) Get(key string) string {
	return p.prefs.String(key)
}

func (p *PrefsStore) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}

func (p *PrefsStore) Remove(key string) error {
	p.prefs.RemoveValue(key)
	return nil
}

// Layered sends the token to Secrets and every other key to Prefs.
type Layered struct {
	Secrets Store
	Prefs   Store
}

func (l Layered) route(key string) Store {
	if key == TokenKey {
		return l.Secrets
	}
	return l.Prefs
}

func (l Layered) Get(key string) string       { return l.route(key).Get(key) }
func (l Layered) Set(key, value string) error { return l.route(key).Set(key, value) }
func (l Layered) Remove(key string) error     { return l.route(key).Remove(key) }
