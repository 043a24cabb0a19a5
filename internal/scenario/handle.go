// Package scenario holds the handle of the scenario currently executed by the
// feature runner. Step groups log through the handle so messages end up attached
// to the scenario report.
package scenario

import (
	"bytes"
	"context"
	"sync"

	"github.com/cucumber/godog"
)

// Handle is the per-scenario log target. One handle exists per scenario run.
type Handle struct {
	ID   string
	Name string
	URI  string
	Tags []string

	mu       sync.Mutex
	messages []string
	pending  int
	partial  []byte
}

// New creates a handle for the given scenario
func New(sc *godog.Scenario) *Handle {
	h := &Handle{}
	if sc == nil {
		return h
	}

	h.ID = sc.Id
	h.Name = sc.Name
	h.URI = sc.Uri
	for _, tag := range sc.Tags {
		h.Tags = append(h.Tags, tag.Name)
	}
	return h
}

// Log appends a message to the scenario log
func (h *Handle) Log(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
	h.pending++
}

// Write implements io.Writer. Every complete line becomes one log message.
func (h *Handle) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.partial = append(h.partial, p...)
	for {
		i := bytes.IndexByte(h.partial, '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimRight(h.partial[:i], "\r"))
		h.partial = h.partial[i+1:]
		if line == "" {
			continue
		}
		h.messages = append(h.messages, line)
		h.pending++
	}
	return len(p), nil
}

// Messages returns a copy of everything logged so far
func (h *Handle) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}

// Drain returns the messages logged since the previous Drain
func (h *Handle) Drain() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending == 0 {
		return nil
	}
	out := append([]string(nil), h.messages[len(h.messages)-h.pending:]...)
	h.pending = 0
	return out
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying h
func NewContext(ctx context.Context, h *Handle) context.Context {
	return context.WithValue(ctx, contextKey{}, h)
}

// FromContext returns the handle stored in ctx, if any
func FromContext(ctx context.Context) (*Handle, bool) {
	h, ok := ctx.Value(contextKey{}).(*Handle)
	return h, ok
}
