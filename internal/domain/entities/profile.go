package entities

// RiskTier represents a profile's risk tolerance
type RiskTier string

const (
	RiskTierLow    RiskTier = "Low"
	RiskTierMedium RiskTier = "Medium"
	RiskTierHigh   RiskTier = "High"
)

// Unrestricted is the sentinel meaning "no constraint on this dimension"
const Unrestricted = "不限"

// Profile represents one financial customer record. The full record holds
// both the public subset and the gated sensitive subset; only the public
// subset may ever leave through the search path.
type Profile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"` // desensitized display name, e.g. "张先生/女士"
	Avatar       string   `json:"avatar"`
	Gender       string   `json:"gender"` // 男 / 女
	Age          int      `json:"age"`
	Region       string   `json:"region"`
	AnnualIncome string   `json:"annualIncome"` // bracket string, e.g. "30w-80w"
	Preferences  []string `json:"investmentPreferences"`
	RiskTier     RiskTier `json:"riskTolerance"`

	Sensitive SensitiveProfile `json:"-"`
}

// SensitiveProfile is the gated subset released only through disclosure
type SensitiveProfile struct {
	RealName    string `json:"realName"`
	Phone       string `json:"phoneNumber"`
	ExactAssets string `json:"exactAssets"`
	CreditScore int    `json:"creditScore"`
}

// PublicView returns the profile stripped of its sensitive subset
func (p Profile) PublicView() Profile {
	p.Sensitive = SensitiveProfile{}
	return p
}

// SearchFilters narrows the profile directory. Empty fields and the
// Unrestricted sentinel impose no predicate on their dimension.
type SearchFilters struct {
	Region        string   `json:"region"`
	Gender        string   `json:"gender"`
	AgeBracket    string   `json:"ageBracket"`
	IncomeBracket string   `json:"incomeBracket"`
	Preferences   []string `json:"preferences"`
}
