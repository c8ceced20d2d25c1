package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMainMenu, "MainMenu"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{StateWin, "Win"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMainMenu)
	assert.Equal(t, GameState(1), StatePlaying)
	assert.Equal(t, GameState(2), StatePaused)
	assert.Equal(t, GameState(3), StateGameOver)
	assert.Equal(t, GameState(4), StateWin)
}

func TestGameState_Flags(t *testing.T) {
	assert.True(t, StatePlaying.Live())
	assert.False(t, StatePaused.Live())
	assert.True(t, StateGameOver.Finished())
	assert.True(t, StateWin.Finished())
	assert.False(t, StatePlaying.Finished())
}

func TestGameState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to GameState
		ok       bool
	}{
		{StateMainMenu, StatePlaying, true},
		{StatePlaying, StatePaused, true},
		{StatePaused, StatePlaying, true},
		{StatePlaying, StateGameOver, true},
		{StatePlaying, StateWin, true},
		{StateGameOver, StateMainMenu, true},
		{StateWin, StatePlaying, true},
		{StatePaused, StatePaused, false},
		{StatePaused, StateGameOver, false},
		{StateGameOver, StateGameOver, false},
		{StateMainMenu, StateWin, false},
		{StateMainMenu, StateMainMenu, false},
		{StatePlaying, GameState(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}
