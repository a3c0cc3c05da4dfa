package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHappyPathTransitions(t *testing.T) {
	path := []string{StatusPending, StatusAccepted, StatusConfirmed, StatusInProgress, StatusCompleted}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransition(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
	}
}

func TestNoSkippingStates(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusConfirmed))
	assert.False(t, CanTransition(StatusPending, StatusInProgress))
	assert.False(t, CanTransition(StatusAccepted, StatusInProgress))
	assert.False(t, CanTransition(StatusConfirmed, StatusCompleted))
}

func TestNoBackwardsTransitions(t *testing.T) {
	assert.False(t, CanTransition(StatusAccepted, StatusPending))
	assert.False(t, CanTransition(StatusConfirmed, StatusAccepted))
	assert.False(t, CanTransition(StatusCompleted, StatusInProgress))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
}

func TestCancelledIsADeadEnd(t *testing.T) {
	for _, to := range []string{StatusPending, StatusAccepted, StatusConfirmed, StatusInProgress, StatusCompleted, StatusDisputed} {
		assert.False(t, CanTransition(StatusCancelled, to), "cancelled -> %s", to)
	}
}

func TestDisputeEdges(t *testing.T) {
	assert.True(t, CanTransition(StatusInProgress, StatusDisputed))
	assert.True(t, CanTransition(StatusCompleted, StatusDisputed))
	assert.False(t, CanTransition(StatusPending, StatusDisputed))
	assert.False(t, CanTransition(StatusConfirmed, StatusDisputed))

	// Operator resolution re-enters a terminal state.
	assert.True(t, CanTransition(StatusDisputed, StatusCompleted))
	assert.True(t, CanTransition(StatusDisputed, StatusCancelled))
	assert.False(t, CanTransition(StatusDisputed, StatusInProgress))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusDisputed))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusInProgress))
}

func TestCancellable(t *testing.T) {
	assert.True(t, Cancellable(StatusPending))
	assert.True(t, Cancellable(StatusAccepted))
	assert.True(t, Cancellable(StatusConfirmed))
	assert.True(t, Cancellable(StatusInProgress))
	assert.False(t, Cancellable(StatusCompleted))
	// A disputed order is only cancelled through operator resolution.
	assert.False(t, Cancellable(StatusDisputed))
}

func TestDisputable(t *testing.T) {
	assert.True(t, Disputable(StatusInProgress))
	assert.True(t, Disputable(StatusCompleted))
	assert.False(t, Disputable(StatusAccepted))
	assert.False(t, Disputable(StatusCancelled))
}

func TestUnknownStatusHasNoEdges(t *testing.T) {
	assert.False(t, CanTransition("archived", StatusCancelled))
	assert.False(t, CanTransition(StatusPending, "archived"))
}
