package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    GameStatus
		to      GameStatus
		allowed bool
	}{
		{"scheduled to warmup", GameStatusScheduled, GameStatusWarmup, true},
		{"scheduled to in_progress", GameStatusScheduled, GameStatusInProgress, true},
		{"scheduled to postponed", GameStatusScheduled, GameStatusPostponed, true},
		{"scheduled to cancelled", GameStatusScheduled, GameStatusCancelled, true},
		{"scheduled to final", GameStatusScheduled, GameStatusFinal, false},
		{"scheduled to suspended", GameStatusScheduled, GameStatusSuspended, false},
		{"warmup to in_progress", GameStatusWarmup, GameStatusInProgress, true},
		{"warmup to postponed", GameStatusWarmup, GameStatusPostponed, true},
		{"warmup to final", GameStatusWarmup, GameStatusFinal, false},
		{"in_progress to suspended", GameStatusInProgress, GameStatusSuspended, true},
		{"in_progress to final", GameStatusInProgress, GameStatusFinal, true},
		{"in_progress to cancelled", GameStatusInProgress, GameStatusCancelled, false},
		{"in_progress to postponed", GameStatusInProgress, GameStatusPostponed, false},
		{"suspended to in_progress", GameStatusSuspended, GameStatusInProgress, true},
		{"suspended to postponed", GameStatusSuspended, GameStatusPostponed, true},
		{"suspended to cancelled", GameStatusSuspended, GameStatusCancelled, true},
		{"suspended to final", GameStatusSuspended, GameStatusFinal, true},
		{"postponed back to scheduled", GameStatusPostponed, GameStatusScheduled, true},
		{"postponed to in_progress", GameStatusPostponed, GameStatusInProgress, false},
		{"cancelled is terminal", GameStatusCancelled, GameStatusScheduled, false},
		{"final is terminal", GameStatusFinal, GameStatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGameStatusTerminal(t *testing.T) {
	assert.True(t, GameStatusCancelled.Terminal())
	assert.True(t, GameStatusFinal.Terminal())
	assert.False(t, GameStatusScheduled.Terminal())
	assert.False(t, GameStatusSuspended.Terminal())
	assert.False(t, GameStatusPostponed.Terminal())
}

func TestGameStatusLive(t *testing.T) {
	assert.True(t, GameStatusInProgress.Live())
	assert.True(t, GameStatusSuspended.Live())
	assert.False(t, GameStatusScheduled.Live())
	assert.False(t, GameStatusWarmup.Live())
	assert.False(t, GameStatusFinal.Live())
}
