package datamodel

// SiteConfiguration contains the site-specific tuning of the OEE model:
// rating thresholds and the downtime impact model. Every deployment gets its
// own values; the defaults below are only a starting point.
type SiteConfiguration struct {
	// OEE rating bands. Overall OEE >= ExcellentThreshold rates excellent,
	// >= GoodThreshold rates good, anything below rates poor.
	ExcellentOEEThreshold float64 `yaml:"excellentOeeThreshold"`
	GoodOEEThreshold      float64 `yaml:"goodOeeThreshold"`

	// Downtime impact model. Lost units scale with the ideal output rate;
	// cost is derived from lost units, not charged per minute.
	UnitsPerMinuteIdeal float64 `yaml:"unitsPerMinuteIdeal"`
	CostPerUnit         float64 `yaml:"costPerUnit"`
	OEEImpactPerMinute  float64 `yaml:"oeeImpactPerMinute"` // percentage points per downtime minute
}

// DefaultSiteConfiguration returns the configuration used when no site file
// is provided.
func DefaultSiteConfiguration() SiteConfiguration {
	return SiteConfiguration{
		ExcellentOEEThreshold: 85.0,
		GoodOEEThreshold:      65.0,
		UnitsPerMinuteIdeal:   3.0,
		CostPerUnit:           50.0,
		OEEImpactPerMinute:    0.18,
	}
}
