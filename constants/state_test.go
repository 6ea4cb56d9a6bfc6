package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardEdges(t *testing.T) {
	allowed := []struct{ from, to DocState }{
		{StateUploaded, StateClassified},
		{StateClassified, StateExtracted},
		{StateExtracted, StateAwaitingPair},
		{StateExtracted, StatePaired},
		{StateAwaitingPair, StatePaired},
		{StatePaired, StateAssembling},
		{StateAssembling, StateCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}
}

func TestCanTransitionRejectsSkipsAndBackwardMoves(t *testing.T) {
	rejected := []struct{ from, to DocState }{
		{StateUploaded, StateExtracted},
		{StateUploaded, StateCompleted},
		{StateClassified, StateUploaded},
		{StateExtracted, StateCompleted},
		{StateAwaitingPair, StateAssembling},
		{StatePaired, StateCompleted},
		{StateAssembling, StatePaired},
	}
	for _, tc := range rejected {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestErrorReachableFromAnyNonTerminalState(t *testing.T) {
	for _, s := range DocStates {
		from := DocState(s)
		if Terminal(from) {
			continue
		}
		assert.True(t, CanTransition(from, StateError), "%s -> ERROR should be legal", from)
	}
}

func TestTerminalStatesAdmitNothing(t *testing.T) {
	for _, terminal := range []DocState{StateCompleted, StateError} {
		for _, s := range DocStates {
			assert.False(t, CanTransition(terminal, DocState(s)), "%s -> %s should be rejected", terminal, s)
		}
	}
	assert.True(t, Terminal(StateCompleted))
	assert.True(t, Terminal(StateError))
	assert.False(t, Terminal(StatePaired))
}
