package pricing

import "testing"

func iptr(v int) *int { return &v }

var standardTiers = TierTable{
	{MinDays: 3, MaxDays: iptr(6), Price: 400},
	{MinDays: 7, MaxDays: iptr(13), Price: 350},
	{MinDays: 14, MaxDays: nil, Price: 300},
}

func TestPickDailyRate(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		tiers TierTable
		days  int
		want  float64
	}{
		{"below first tier uses base", 450, standardTiers, 1, 450},
		{"first tier lower bound", 450, standardTiers, 3, 400},
		{"inside first tier", 450, standardTiers, 4, 400},
		{"first tier upper bound", 450, standardTiers, 6, 400},
		{"second tier", 450, standardTiers, 10, 350},
		{"open-ended tier", 450, standardTiers, 30, 300},
		{"no tiers always base", 500, nil, 5, 500},
		{
			"gap between tiers falls back to base",
			450,
			TierTable{
				{MinDays: 3, MaxDays: iptr(5), Price: 400},
				{MinDays: 10, MaxDays: nil, Price: 300},
			},
			7,
			450,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PickDailyRate(tc.base, tc.tiers, tc.days); got != tc.want {
				t.Fatalf("PickDailyRate(%v, tiers, %d) = %v, want %v",
					tc.base, tc.days, got, tc.want)
			}
		})
	}
}

func TestPickDailyRateTotals(t *testing.T) {
	tiers := TierTable{
		{MinDays: 1, MaxDays: iptr(1), Price: 400},
		{MinDays: 2, MaxDays: iptr(6), Price: 350},
		{MinDays: 7, MaxDays: nil, Price: 300},
	}

	tests := []struct {
		days  int
		total float64
	}{
		{1, 400},
		{4, 1400},
		{10, 3000},
	}

	for _, tc := range tests {
		rate := PickDailyRate(450, tiers, tc.days)
		if got := rate * float64(tc.days); got != tc.total {
			t.Fatalf("%d days: total = %v, want %v", tc.days, got, tc.total)
		}
	}
}

func TestPickDailyRateNoTiersBase(t *testing.T) {
	rate := PickDailyRate(500, TierTable{}, 5)
	if total := rate * 5; total != 2500 {
		t.Fatalf("5 days without tiers: total = %v, want 2500", total)
	}
}
