package competition

// Competition is a football competition as listed on the home page.
type Competition struct {
	Name string
	Code string
	Area string
	Plan string
}

const (
	PlanTierOne   = "TIER_ONE"
	PlanTierTwo   = "TIER_TWO"
	PlanTierThree = "TIER_THREE"
	PlanTierFour  = "TIER_FOUR"
)
