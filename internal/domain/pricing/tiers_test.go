package pricing

import (
	"encoding/json"
	"testing"

	"github.com/vilis-app/carsrent-api/internal/httperr"
)

func fptr(v float64) *float64 { return &v }

func TestNormalizeTiersKeepsValidTable(t *testing.T) {
	got, err := NormalizeTiers([]TierInput{
		{MinDays: 3, MaxDays: fptr(6), Price: 400},
		{MinDays: 7, MaxDays: fptr(13), Price: 350},
		{MinDays: 14, MaxDays: nil, Price: 300},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(got))
	}
	if got[0].MinDays != 3 || got[1].MinDays != 7 || got[2].MinDays != 14 {
		t.Fatalf("wrong order: %+v", got)
	}
	if got[2].MaxDays != nil {
		t.Fatalf("expected open-ended last tier, got %+v", got[2])
	}
}

func TestNormalizeTiersSortsByMinDays(t *testing.T) {
	got, err := NormalizeTiers([]TierInput{
		{MinDays: 14, MaxDays: nil, Price: 300},
		{MinDays: 3, MaxDays: fptr(6), Price: 400},
		{MinDays: 7, MaxDays: fptr(13), Price: 350},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].MinDays != 3 || got[1].MinDays != 7 || got[2].MinDays != 14 {
		t.Fatalf("not sorted: %+v", got)
	}
}

func TestNormalizeTiersDropsJunkEntries(t *testing.T) {
	got, err := NormalizeTiers([]TierInput{
		{MinDays: 0, Price: 100},        // minDays < 1
		{MinDays: 2.5, Price: 100},      // non-integer minDays
		{MinDays: 3, Price: 0},          // price not positive
		{MinDays: 4, Price: -50},        // negative price
		{MinDays: 5, MaxDays: fptr(10), Price: 200}, // the one keeper
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving tier, got %d: %+v", len(got), got)
	}
	if got[0].MinDays != 5 || got[0].Price != 200 {
		t.Fatalf("wrong survivor: %+v", got[0])
	}
}

func TestNormalizeTiersRejectsMaxBeforeMin(t *testing.T) {
	_, err := NormalizeTiers([]TierInput{
		{MinDays: 5, MaxDays: fptr(3), Price: 100},
	})
	if !httperr.IsBusiness(err, "tier_max_before_min") {
		t.Fatalf("expected tier_max_before_min, got %v", err)
	}
}

func TestNormalizeTiersRejectsOverlap(t *testing.T) {
	_, err := NormalizeTiers([]TierInput{
		{MinDays: 1, MaxDays: fptr(5), Price: 300},
		{MinDays: 4, MaxDays: fptr(10), Price: 250},
	})
	if !httperr.IsBusiness(err, "overlapping_tiers") {
		t.Fatalf("expected overlapping_tiers, got %v", err)
	}
}

func TestNormalizeTiersRejectsTierAfterUnbounded(t *testing.T) {
	// An open-ended tier swallows everything above it, so anything that
	// sorts after it necessarily overlaps.
	_, err := NormalizeTiers([]TierInput{
		{MinDays: 3, MaxDays: nil, Price: 300},
		{MinDays: 10, MaxDays: nil, Price: 250},
	})
	if !httperr.IsBusiness(err, "overlapping_tiers") {
		t.Fatalf("expected overlapping_tiers, got %v", err)
	}
}

func TestNormalizeTiersEmptyInput(t *testing.T) {
	got, err := NormalizeTiers(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty table, got %+v", got)
	}
}

func decodeTierInputs(t *testing.T, payload string) []TierInput {
	t.Helper()
	var raw []TierInput
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return raw
}

func TestTierInputEmptyStringMaxDaysIsUnbounded(t *testing.T) {
	raw := decodeTierInputs(t, `[{"minDays":2,"maxDays":"","price":100}]`)

	got, err := NormalizeTiers(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 tier, got %d: %+v", len(got), got)
	}
	if got[0].MaxDays != nil {
		t.Fatalf("empty-string maxDays must mean unbounded, got %v", *got[0].MaxDays)
	}
	if got[0].MinDays != 2 || got[0].Price != 100 {
		t.Fatalf("wrong tier: %+v", got[0])
	}
}

func TestTierInputCoercesNumericStrings(t *testing.T) {
	raw := decodeTierInputs(t, `[{"minDays":"3","maxDays":"6","price":"400"}]`)

	got, err := NormalizeTiers(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 tier, got %d: %+v", len(got), got)
	}
	if got[0].MinDays != 3 || got[0].MaxDays == nil || *got[0].MaxDays != 6 || got[0].Price != 400 {
		t.Fatalf("wrong tier: %+v", got[0])
	}
}

func TestTierInputJunkStringsDegrade(t *testing.T) {
	// Unparseable minDays/price drop the entry; an unparseable maxDays
	// degrades to unbounded on an otherwise valid tier.
	raw := decodeTierInputs(t, `[
		{"minDays":"abc","maxDays":5,"price":100},
		{"minDays":2,"maxDays":10,"price":"abc"},
		{"minDays":3,"maxDays":"abc","price":200}
	]`)

	got, err := NormalizeTiers(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving tier, got %d: %+v", len(got), got)
	}
	if got[0].MinDays != 3 || got[0].MaxDays != nil || got[0].Price != 200 {
		t.Fatalf("wrong survivor: %+v", got[0])
	}
}

func TestTierInputNullMaxDaysIsUnbounded(t *testing.T) {
	raw := decodeTierInputs(t, `[{"minDays":7,"maxDays":null,"price":300},{"minDays":2,"maxDays":6,"price":350}]`)

	got, err := NormalizeTiers(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(got))
	}
	if got[1].MinDays != 7 || got[1].MaxDays != nil {
		t.Fatalf("null maxDays must mean unbounded: %+v", got[1])
	}
}

func TestTierTableScanCorruptText(t *testing.T) {
	var tt TierTable
	if err := tt.Scan("{not json"); err != nil {
		t.Fatalf("corrupt text must not error, got %v", err)
	}
	if len(tt) != 0 {
		t.Fatalf("expected empty table, got %+v", tt)
	}
}

func TestTierTableScanRoundTrip(t *testing.T) {
	src := TierTable{
		{MinDays: 3, MaxDays: nil, Price: 400},
	}
	v, err := src.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var dst TierTable
	if err := dst.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(dst) != 1 || dst[0].MinDays != 3 || dst[0].Price != 400 || dst[0].MaxDays != nil {
		t.Fatalf("round trip mismatch: %+v", dst)
	}
}
