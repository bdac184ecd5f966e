package config

// CompareConfig defines how raw URLs are normalized into comparison keys
// and how the two sides are labeled in the report.
type CompareConfig struct {
	IncludeQuery      bool   `json:"include_query" yaml:"include_query"`
	KeepTrailingSlash bool   `json:"keep_trailing_slash" yaml:"keep_trailing_slash"`
	LabelA            string `json:"label_a,omitempty" yaml:"label_a,omitempty"`
	LabelB            string `json:"label_b,omitempty" yaml:"label_b,omitempty"`
	RespectCase       bool   `json:"respect_case" yaml:"respect_case"`
}

func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{
		IncludeQuery:      false,
		KeepTrailingSlash: false,
		LabelA:            DefaultCompareLabelA,
		LabelB:            DefaultCompareLabelB,
		RespectCase:       false,
	}
}
