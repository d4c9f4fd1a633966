package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the desktop clipboard through xclip/xsel,
// pbcopy or the Windows API.
type SystemClipboard struct{}

// CopyToClipboard implements [Clipboard].
func (SystemClipboard) CopyToClipboard(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// ReadClipboard implements [Clipboard].
func (SystemClipboard) ReadClipboard(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// MemoryClipboard is a process-local clipboard for headless platforms and
// tests.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// CopyToClipboard implements [Clipboard].
func (m *MemoryClipboard) CopyToClipboard(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// ReadClipboard implements [Clipboard].
func (m *MemoryClipboard) ReadClipboard(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
