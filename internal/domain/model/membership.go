package model

// Membership describes a purchasable subscription tier.
type Membership struct {
	ID    MembershipID
	Tier  string
	Price float64
	Perks []string
}
