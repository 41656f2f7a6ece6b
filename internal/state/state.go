package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/denisbrodbeck/machineid"

	"github.com/vinser/asciipath/internal/result"
)

// Entry is one remembered walk.
type Entry struct {
	Name    string    `json:"name"`
	Letters string    `json:"letters"`
	Path    string    `json:"path"`
	OK      bool      `json:"ok"`
	Errors  []string  `json:"errors,omitempty"`
	At      time.Time `json:"at"`
}

// History holds persistent data such as recent walks and viewer settings.
type History struct {
	Theme   string  `json:"theme"`   // Viewer theme: dark or light
	Entries []Entry `json:"entries"` // Most recent first

	dir string
}

const (
	// MaxEntries is how many walks are remembered.
	MaxEntries = 50

	ThemeDark    = "dark"
	ThemeLight   = "light"
	ThemeDefault = ThemeDark

	appName  = "asciipath"
	fileName = "history.dat"
)

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID(appName)
	if err != nil {
		appID = "default-asciipath-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// Option configures where a History lives.
type Option func(*History)

// WithDir stores the history file in dir instead of the user config dir.
func WithDir(dir string) Option {
	return func(h *History) {
		h.dir = dir
	}
}

// New returns an empty history.
func New(opts ...Option) *History {
	h := &History{Theme: ThemeDefault}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Record prepends results to the history, dropping the oldest entries
// beyond MaxEntries.
func (h *History) Record(results ...*result.Result) {
	now := time.Now()
	fresh := make([]Entry, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		fresh = append(fresh, Entry{
			Name:    r.Name(),
			Letters: r.Letters(),
			Path:    r.Path(),
			OK:      !r.HasErrors(),
			Errors:  r.Errors(),
			At:      now,
		})
	}
	h.Entries = append(fresh, h.Entries...)
	if len(h.Entries) > MaxEntries {
		h.Entries = h.Entries[:MaxEntries]
	}
}

// Clear forgets all walks.
func (h *History) Clear() {
	h.Entries = nil
}

// RecordAndSave records results and persists the history.
func (h *History) RecordAndSave(results ...*result.Result) error {
	h.Record(results...)
	return h.Save()
}

// Save persists the history to an encrypted file with an integrity check.
func (h *History) Save() error {
	path, err := h.savePath()
	if err != nil {
		return err
	}

	// Serialize to JSON
	raw, err := json.Marshal(h)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0644)
}

// Load reads the history from disk, decrypts and verifies it.
// Anything unreadable yields an empty history.
func Load(opts ...Option) *History {
	h := New(opts...)

	path, err := h.savePath()
	if err != nil {
		return h
	}

	encrypted, err := os.ReadFile(path)
	if err != nil {
		return h
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return h
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return h
	}

	loaded := New(opts...)
	if err = json.Unmarshal(payload, loaded); err != nil {
		return h // Corrupted JSON
	}
	if loaded.Theme != ThemeDark && loaded.Theme != ThemeLight {
		loaded.Theme = ThemeDefault
	}
	return loaded
}

// ======================
// AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// savePath returns the path to the history file, inside the user config
// directory unless WithDir was given.
func (h *History) savePath() (string, error) {
	saveDir := h.dir
	if saveDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		saveDir = filepath.Join(configDir, appName)
	}
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, fileName), nil
}
