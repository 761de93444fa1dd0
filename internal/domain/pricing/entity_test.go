package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestOverlapsPeriod(t *testing.T) {
	periodStart := date(2026, 3, 1)
	periodEnd := date(2026, 3, 14)

	cases := []struct {
		name string
		p    ClientPricing
		want bool
	}{
		{
			"open-ended before period",
			ClientPricing{EffectiveFrom: date(2026, 1, 1)},
			true,
		},
		{
			"open-ended starting mid-period",
			ClientPricing{EffectiveFrom: date(2026, 3, 10)},
			true,
		},
		{
			"starts after period ends",
			ClientPricing{EffectiveFrom: date(2026, 3, 15)},
			false,
		},
		{
			"ends before period starts",
			ClientPricing{EffectiveFrom: date(2026, 1, 1), EffectiveTo: datePtr(2026, 2, 28)},
			false,
		},
		{
			"ends exactly on period start",
			ClientPricing{EffectiveFrom: date(2026, 1, 1), EffectiveTo: datePtr(2026, 3, 1)},
			true,
		},
		{
			"starts exactly on period end",
			ClientPricing{EffectiveFrom: date(2026, 3, 14)},
			true,
		},
		{
			"partial overlap within period",
			ClientPricing{EffectiveFrom: date(2026, 3, 5), EffectiveTo: datePtr(2026, 3, 8)},
			true,
		},
		{
			"covers the whole period",
			ClientPricing{EffectiveFrom: date(2026, 1, 1), EffectiveTo: datePtr(2026, 12, 31)},
			true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.p.OverlapsPeriod(periodStart, periodEnd))
		})
	}
}
