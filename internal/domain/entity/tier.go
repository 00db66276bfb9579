package entity

// Tier is the quality/urgency bucket of a single deal.
type Tier string

const (
	TierFree   Tier = "free"
	TierInsane Tier = "insane"
	TierSale   Tier = "sale"
)

func (t Tier) String() string {
	return string(t)
}

// QualityTier is the coarse reputation bucket of a title, derived from user
// rating and critic score signals.
type QualityTier string

const (
	QualityGreat   QualityTier = "great"
	QualityGood    QualityTier = "good"
	QualityUnknown QualityTier = "unknown"
)

func (q QualityTier) String() string {
	return string(q)
}

// Rank orders quality tiers for sorting: great > good > unknown.
func (q QualityTier) Rank() int {
	switch q {
	case QualityGreat:
		return 2
	case QualityGood:
		return 1
	default:
		return 0
	}
}
