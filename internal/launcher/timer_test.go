package launcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := NewTimer(3*time.Second, clock.Now)

	assert.True(t, timer.Enabled())
	assert.Equal(t, time.Unix(1003, 0), timer.Deadline())
	assert.Equal(t, 3*time.Second, timer.Remaining())
	assert.False(t, timer.Expired())

	clock.Advance(3 * time.Second)
	assert.True(t, timer.Expired())
	assert.Equal(t, time.Duration(0), timer.Remaining())

	clock.Advance(time.Hour)
	assert.Equal(t, time.Duration(0), timer.Remaining(), "remaining is never negative")
}

func TestTimerTouchMovesDeadline(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := NewTimer(3*time.Second, clock.Now)

	clock.Advance(2 * time.Second)
	timer.Touch()
	assert.Equal(t, time.Unix(1005, 0), timer.Deadline())

	clock.Advance(2 * time.Second)
	assert.False(t, timer.Expired())
}

func TestTimerDisabled(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := NewTimer(0, clock.Now)

	clock.Advance(time.Hour)
	assert.False(t, timer.Enabled())
	assert.False(t, timer.Expired())
	assert.True(t, timer.Deadline().IsZero())
	assert.Equal(t, time.Duration(0), timer.Remaining())
}

func TestTimerDefaultClock(t *testing.T) {
	timer := NewTimer(time.Hour, nil)
	assert.False(t, timer.Expired())
	assert.Greater(t, timer.Remaining(), 59*time.Minute)
}
