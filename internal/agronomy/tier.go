package agronomy

import "strings"

// InvestmentTier controls both the assumed expense per acre and the yield
// multiplier applied by the prediction engine.
type InvestmentTier string

const (
	TierLow     InvestmentTier = "Low"
	TierMedium  InvestmentTier = "Medium"
	TierHigh    InvestmentTier = "High"
	TierPremium InvestmentTier = "Premium"
)

// Tiers lists every investment tier in ascending order of spend.
func Tiers() []InvestmentTier {
	return []InvestmentTier{TierLow, TierMedium, TierHigh, TierPremium}
}

// ParseTier resolves a tier name. Matching is exact after trimming whitespace,
// mirroring the fixed option list a form offers.
func ParseTier(s string) (InvestmentTier, bool) {
	t := InvestmentTier(strings.TrimSpace(s))
	switch t {
	case TierLow, TierMedium, TierHigh, TierPremium:
		return t, true
	}
	return "", false
}

// String implements fmt.Stringer.
func (t InvestmentTier) String() string {
	return string(t)
}
