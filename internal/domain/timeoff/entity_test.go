package timeoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdayCount(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		// 2026-03-02 is a Monday
		{"full work week", date(2026, 3, 2), date(2026, 3, 6), 5},
		{"week including weekend", date(2026, 3, 2), date(2026, 3, 8), 5},
		{"single weekday", date(2026, 3, 4), date(2026, 3, 4), 1},
		{"single saturday", date(2026, 3, 7), date(2026, 3, 7), 0},
		{"weekend only", date(2026, 3, 7), date(2026, 3, 8), 0},
		{"two weeks", date(2026, 3, 2), date(2026, 3, 13), 10},
		{"end before start", date(2026, 3, 6), date(2026, 3, 2), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WeekdayCount(c.start, c.end))
		})
	}
}

func TestTransitions(t *testing.T) {
	assert.True(t, statemachine.CanTransition(Transitions, string(StatusPending), string(StatusApproved)))
	assert.True(t, statemachine.CanTransition(Transitions, string(StatusPending), string(StatusDenied)))
	// Decisions are final.
	assert.False(t, statemachine.CanTransition(Transitions, string(StatusApproved), string(StatusDenied)))
	assert.False(t, statemachine.CanTransition(Transitions, string(StatusDenied), string(StatusPending)))
}
