// Package timing records how long the startup phases take.
package timing

import (
	"sync"
	"time"

	"periodic-tutor/internal/logger"
)

// Phase is one completed, timed step
type Phase struct {
	Name     string
	Duration time.Duration
}

type Tracker struct {
	phases []Phase
	mu     sync.Mutex
	logger logger.Logger
	now    func() time.Time
}

func NewTracker(log logger.Logger) *Tracker {
	return &Tracker{
		phases: make([]Phase, 0),
		logger: log,
		now:    time.Now,
	}
}

// Start begins timing name. The returned function ends it; calling it more
// than once records only the first call.
func (t *Tracker) Start(name string) func() {
	start := t.now()
	var once sync.Once

	return func() {
		once.Do(func() {
			duration := t.now().Sub(start)

			t.mu.Lock()
			t.phases = append(t.phases, Phase{Name: name, Duration: duration})
			t.mu.Unlock()

			t.logger.Debug("timing", "phase completed", map[string]interface{}{
				"phase":       name,
				"duration_ms": duration.Milliseconds(),
			})
		})
	}
}

// Phases returns the completed phases in completion order
func (t *Tracker) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]Phase, len(t.phases))
	copy(result, t.phases)
	return result
}

// Total is the sum of all completed phases
func (t *Tracker) Total() time.Duration {
	var total time.Duration
	for _, p := range t.Phases() {
		total += p.Duration
	}
	return total
}
