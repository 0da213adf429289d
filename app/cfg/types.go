package cfg

type Cfg struct {
	// Content configuration
	ContentDir      string
	SiteFile        string
	StaticDir       string
	ReadConcurrency int
	StrictContent   bool

	// Server configuration
	Port    string
	BaseUrl string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

// SiteURL is the public root of the site, used for absolute links.
func (c *Cfg) SiteURL() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return "http://localhost:" + c.Port
}
