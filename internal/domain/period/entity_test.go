package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhive/staffhive-backend-go/internal/pkg/statemachine"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContainsDate(t *testing.T) {
	p := PayPeriod{
		PeriodStart: date(2026, 3, 1),
		PeriodEnd:   date(2026, 3, 14),
	}
	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"start boundary", date(2026, 3, 1), true},
		{"end boundary", date(2026, 3, 14), true},
		{"inside", date(2026, 3, 7), true},
		{"day before", date(2026, 2, 28), false},
		{"day after", date(2026, 3, 15), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, p.ContainsDate(c.d))
		})
	}
}

func TestLabel(t *testing.T) {
	p := PayPeriod{
		PeriodStart: date(2026, 3, 1),
		PeriodEnd:   date(2026, 3, 14),
	}
	assert.Equal(t, "2026-03-01 to 2026-03-14", p.Label())
}

func TestTransitions(t *testing.T) {
	allowed := [][2]Status{
		{StatusOpen, StatusClosed},
		{StatusClosed, StatusOpen},
		{StatusClosed, StatusProcessed},
	}
	for _, tr := range allowed {
		assert.True(t, statemachine.CanTransition(Transitions, string(tr[0]), string(tr[1])),
			"%s -> %s should be allowed", tr[0], tr[1])
	}
	blocked := [][2]Status{
		{StatusOpen, StatusProcessed},
		{StatusProcessed, StatusOpen},
		{StatusProcessed, StatusClosed},
	}
	for _, tr := range blocked {
		assert.False(t, statemachine.CanTransition(Transitions, string(tr[0]), string(tr[1])),
			"%s -> %s should be blocked", tr[0], tr[1])
	}
}
