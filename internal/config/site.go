package config

// SiteConfig holds per-site crawl settings loaded from the YAML file.
// This allows running the same binary against different wikis without
// editing flags every time.
type SiteConfig struct {
	// Seeds are start URLs for this site.
	Seeds []string `yaml:"seeds,omitempty"`

	// ScopeHost overrides the scope substring for this site.
	ScopeHost string `yaml:"scopeHost,omitempty"`

	// MaxPages overrides the page budget for this site.
	// Zero means use the global setting.
	MaxPages int `yaml:"maxPages,omitempty"`

	// CountEmptyPages overrides the empty-page policy for this site.
	// Nil means use the global setting.
	CountEmptyPages *bool `yaml:"countEmptyPages,omitempty"`
}

// File represents the structure of the .wikicrawl configuration file.
type File struct {
	// Sites maps a site name (scope host) to its settings.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults are applied to every site unless overridden.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the merged configuration for a site, starting
// from Defaults and overlaying the site-specific entry if present.
func (cf *File) GetSiteConfig(site string) SiteConfig {
	result := cf.Defaults

	if sc, ok := cf.Sites[site]; ok {
		if len(sc.Seeds) > 0 {
			result.Seeds = sc.Seeds
		}
		if sc.ScopeHost != "" {
			result.ScopeHost = sc.ScopeHost
		}
		if sc.MaxPages != 0 {
			result.MaxPages = sc.MaxPages
		}
		if sc.CountEmptyPages != nil {
			result.CountEmptyPages = sc.CountEmptyPages
		}
	}

	return result
}

// Apply overlays the site config onto a Config. Zero values in the site
// config leave the corresponding Config field untouched.
func (sc SiteConfig) Apply(c *Config) {
	if len(sc.Seeds) > 0 {
		c.StartURLs = sc.Seeds
	}
	if sc.ScopeHost != "" {
		c.ScopeHost = sc.ScopeHost
	}
	if sc.MaxPages > 0 {
		c.MaxPages = sc.MaxPages
	}
	if sc.CountEmptyPages != nil {
		c.CountEmptyPages = *sc.CountEmptyPages
	}
}
