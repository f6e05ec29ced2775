package pricing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vilis-app/carsrent-api/internal/httperr"
)

// Currency applied to every price on the marketplace.
const Currency = "MAD"

// Tier gives a per-day price for rentals whose length falls inside
// [MinDays, MaxDays]. A nil MaxDays means the tier is unbounded above.
type Tier struct {
	MinDays int     `json:"minDays"`
	MaxDays *int    `json:"maxDays"`
	Price   float64 `json:"price"`
}

// TierTable is a car's long-stay pricing configuration: sorted by MinDays,
// pairwise non-overlapping. An empty table means the car's base daily
// price always applies.
type TierTable []Tier

// TierInput is the raw, not-yet-validated form accepted from agencies.
// MaxDays may be absent, null or an empty string, all meaning unbounded.
type TierInput struct {
	MinDays float64  `json:"minDays"`
	MaxDays *float64 `json:"maxDays"`
	Price   float64  `json:"price"`
}

// UnmarshalJSON applies loose numeric coercion: agency form clients send
// tier fields as numbers or as strings, and an empty-string maxDays means
// "no upper bound". Unparseable minDays/price become NaN so NormalizeTiers
// drops the entry; unparseable maxDays degrades to unbounded.
func (t *TierInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		MinDays json.RawMessage `json:"minDays"`
		MaxDays json.RawMessage `json:"maxDays"`
		Price   json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.MinDays = coerceNumber(raw.MinDays)
	t.MaxDays = coerceBound(raw.MaxDays)
	t.Price = coerceNumber(raw.Price)
	return nil
}

func coerceNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return math.NaN()
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}

	return math.NaN()
}

func coerceBound(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return &v
		}
	}

	return nil
}

// NormalizeTiers cleans and validates a raw tier list.
//
// Entries whose minDays is not an integer >= 1 or whose price is not > 0
// are silently dropped. The survivors are sorted ascending by minDays and
// checked for two hard invariants: maxDays >= minDays within a tier, and
// strictly increasing non-overlapping ranges across tiers. Violating
// either is a validation error, not a drop: it means the agency saved a
// corrupt pricing configuration that must be fixed before the listing is
// usable.
func NormalizeTiers(raw []TierInput) (TierTable, error) {
	cleaned := make(TierTable, 0, len(raw))

	for _, in := range raw {
		if math.IsNaN(in.MinDays) || math.IsInf(in.MinDays, 0) {
			continue
		}
		minDays := int(in.MinDays)
		if float64(minDays) != in.MinDays || minDays < 1 {
			continue
		}
		if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price <= 0 {
			continue
		}

		var maxDays *int
		if in.MaxDays != nil && !math.IsNaN(*in.MaxDays) && !math.IsInf(*in.MaxDays, 0) {
			m := int(*in.MaxDays)
			maxDays = &m
		}

		cleaned = append(cleaned, Tier{
			MinDays: minDays,
			MaxDays: maxDays,
			Price:   in.Price,
		})
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].MinDays < cleaned[j].MinDays
	})

	for i, t := range cleaned {
		if t.MaxDays != nil && *t.MaxDays < t.MinDays {
			return nil, httperr.ErrValidation("tier_max_before_min", "Tier maxDays < minDays")
		}
		if i > 0 {
			prev := cleaned[i-1]
			// prev effective end is maxDays, or +inf when unbounded
			if prev.MaxDays == nil || t.MinDays <= *prev.MaxDays {
				return nil, httperr.ErrValidation("overlapping_tiers", "Overlapping tiers")
			}
		}
	}

	return cleaned, nil
}

// --------------------------------------------------
// Storage boundary (tiers live in a single text column)
// --------------------------------------------------

func (t TierTable) Value() (driver.Value, error) {
	if t == nil {
		t = TierTable{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes the stored JSON text. Corrupt or empty text yields an
// empty table instead of an error: the column is non-critical pricing
// metadata and a broken blob must not make the car unreadable.
func (t *TierTable) Scan(src any) error {
	*t = TierTable{}

	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("pricing: cannot scan %T into TierTable", src)
	}

	if len(b) == 0 {
		return nil
	}

	var decoded TierTable
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil
	}
	*t = decoded
	return nil
}
