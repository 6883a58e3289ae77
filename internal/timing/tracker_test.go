package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-tutor/internal/logger"
)

// sequenceClock returns the given offsets from a fixed base, one per call
func sequenceClock(offsets ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		t := base.Add(offsets[i])
		i++
		return t
	}
}

func TestTrackerRecordsPhasesInOrder(t *testing.T) {
	tracker := NewTracker(logger.NewNop())
	tracker.now = sequenceClock(0, 5*time.Millisecond, 10*time.Millisecond, 17*time.Millisecond)

	stopConfig := tracker.Start("config")
	stopConfig()
	stopOntology := tracker.Start("ontology")
	stopOntology()

	phases := tracker.Phases()
	require.Len(t, phases, 2)
	assert.Equal(t, "config", phases[0].Name)
	assert.Equal(t, 5*time.Millisecond, phases[0].Duration)
	assert.Equal(t, "ontology", phases[1].Name)
	assert.Equal(t, 7*time.Millisecond, phases[1].Duration)
	assert.Equal(t, 12*time.Millisecond, tracker.Total())
}

func TestStopIsIdempotent(t *testing.T) {
	tracker := NewTracker(logger.NewNop())

	stop := tracker.Start("catalog")
	stop()
	stop()

	assert.Len(t, tracker.Phases(), 1)
}

func TestPhasesReturnsCopy(t *testing.T) {
	tracker := NewTracker(logger.NewNop())
	tracker.Start("config")()

	phases := tracker.Phases()
	phases[0].Name = "changed"

	assert.Equal(t, "config", tracker.Phases()[0].Name)
}
