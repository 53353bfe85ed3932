package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopOrdersByMovesThenTime(t *testing.T) {
	b := New()
	b.Add(Entry{Username: "slow", StartRow: 2, StartCol: 3, MoveCount: 31, ElapsedMs: 9000})
	b.Add(Entry{Username: "fast", StartRow: 2, StartCol: 3, MoveCount: 31, ElapsedMs: 1500})
	b.Add(Entry{Username: "clumsy", StartRow: 2, StartCol: 3, MoveCount: 40, ElapsedMs: 500})

	assert.Equal(t, 3, b.Len())

	top := b.Top(2)
	assert.Len(t, top, 2)
	assert.Equal(t, "fast", top[0].Username)
	assert.Equal(t, "slow", top[1].Username)
}

func TestTopCapsAtLength(t *testing.T) {
	b := New()
	b.Add(Entry{Username: "only", MoveCount: 31, ElapsedMs: 1000})
	assert.Len(t, b.Top(5), 1)
}
