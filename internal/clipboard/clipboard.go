// Package clipboard adapts platform and in-memory clipboards to the Sink
// contract used to copy generated passwords.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	atotto "github.com/atotto/clipboard"
)

var (
	ErrNothingToCopy = errors.New("nothing to copy: generate a password first")
	ErrUnavailable   = errors.New("clipboard is not available on this system")
)

// Sink receives text to place on a clipboard.
type Sink interface {
	Write(text string) error
}

// Copy writes password to sink. An empty password is refused.
func Copy(sink Sink, password string) error {
	if password == "" {
		return ErrNothingToCopy
	}
	if err := sink.Write(password); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// System writes to the operating system clipboard.
type System struct{}

// Write places text on the system clipboard.
func (System) Write(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}

// Memory is a clipboard held in process memory. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// Write replaces the stored text.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times Write was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
