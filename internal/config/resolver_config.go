package config

// ResolverConfig defines limits for sitemap tree resolution.
type ResolverConfig struct {
	// MaxSitemaps bounds the number of sitemap documents fetched per side.
	// Together with the visited-URL guard this keeps a self-referential or
	// runaway sitemap index from fetching forever.
	MaxSitemaps int `json:"max_sitemaps,omitempty" yaml:"max_sitemaps,omitempty" validate:"omitempty,min=1"`
}

func NewDefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		MaxSitemaps: DefaultResolverMaxSitemaps,
	}
}
