// Package clipboard copies results to and pastes expressions from the
// system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/logger"
)

// Backend is the subset of golang.design/x/clipboard the package uses.
type Backend interface {
	Init() error
	Read() []byte
	Write(data []byte)
}

// systemBackend talks to the real clipboard as plain text.
type systemBackend struct{}

func (systemBackend) Init() error        { return clipboard.Init() }
func (systemBackend) Read() []byte       { return clipboard.Read(clipboard.FmtText) }
func (systemBackend) Write(data []byte) { clipboard.Write(clipboard.FmtText, data) }

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
)

// SetBackend swaps the clipboard implementation and forces re-initialization.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(systemBackend{})
}

// Init initializes the clipboard. It is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return cerrors.ClipboardFailed("Init", err)
	}
	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// ReadText returns the clipboard's text, or "" when it holds none.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	data := backend.Read()
	logger.Debug("Clipboard: read %d bytes of text", len(data))
	return string(data), nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	backend.Write([]byte(text))
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}
