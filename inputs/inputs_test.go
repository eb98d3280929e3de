package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWasExitPressed(t *testing.T) {
	assert.False(t, WasExitPressed(State{}))
	assert.True(t, WasExitPressed(State{Exit: true}))
}

func TestLimitFrames(t *testing.T) {
	var polls int
	base := PollerFunc(func() State {
		polls++
		return State{}
	})

	p := LimitFrames(base, 3)
	var exits []bool
	for i := 0; i < 5; i++ {
		exits = append(exits, WasExitPressed(p.PollFrameInput()))
	}
	assert.Equal(t, []bool{false, false, false, true, true}, exits)
	assert.Equal(t, 5, polls)
}

func TestLimitFramesKeepsUnderlyingExit(t *testing.T) {
	p := LimitFrames(PollerFunc(func() State { return State{Exit: true} }), 10)
	assert.True(t, WasExitPressed(p.PollFrameInput()))
}

func TestLimitFramesZero(t *testing.T) {
	base := PollerFunc(func() State { return State{} })
	p := LimitFrames(base, 0)
	for i := 0; i < 100; i++ {
		assert.False(t, WasExitPressed(p.PollFrameInput()))
	}
}

func TestParseKey(t *testing.T) {
	assert.Equal(t, KeyEscape, ParseKey("escape"))
	assert.Equal(t, KeyPlus, ParseKey("plus"))
	assert.Equal(t, KeyUnknown, ParseKey("f13"))
	assert.Equal(t, "q", KeyQ.String())
}
