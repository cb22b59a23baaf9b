package notify

import (
	"context"
	"sync"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.Notifier = (*Recorder)(nil)

// Recorder collects notices in delivery order until drained.
type Recorder struct {
	mu      sync.Mutex
	notices []domain.Notice
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the notice.
func (r *Recorder) Notify(_ context.Context, notice domain.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

// Drain returns all recorded notices and clears the recorder.
func (r *Recorder) Drain() []domain.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}
