package kernel_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	id kernel.UUID
	at time.Time
}

func (e sampleEvent) EventName() string        { return "sample" }
func (e sampleEvent) AggregateID() kernel.UUID { return e.id }
func (e sampleEvent) OccurredOnUTC() time.Time { return e.at }

func TestEventRecorder(t *testing.T) {
	var recorder kernel.EventRecorder
	assert.Empty(t, recorder.DomainEvents())

	event := sampleEvent{id: kernel.NewUUID(), at: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	recorder.RecordEvent(event)

	events := recorder.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, event, events[0])

	// returned slice is a copy
	events[0] = nil
	assert.NotNil(t, recorder.DomainEvents()[0])

	recorder.ClearDomainEvents()
	assert.Empty(t, recorder.DomainEvents())
}
