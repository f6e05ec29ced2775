package pricing

// PickDailyRate resolves the per-day price for a rental of the given
// length. The first tier containing the day count wins. When the table is
// empty, or the day count falls in a gap no tier covers, the car's base
// rate applies: agencies may configure long-stay discounts only and
// leave short rentals on the base price.
func PickDailyRate(base float64, tiers TierTable, days int) float64 {
	for _, t := range tiers {
		if days >= t.MinDays && (t.MaxDays == nil || days <= *t.MaxDays) {
			return t.Price
		}
	}
	return base
}
