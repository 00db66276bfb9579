package entity

// DealAlert is an insane-tier find emitted by a refresh cycle, consumed by
// the notifier bot.
type DealAlert struct {
	Deal            Deal
	Tier            Tier
	Quality         QualityTier
	DiscountPercent int
	Score           float64
}
