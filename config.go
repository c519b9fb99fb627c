package linkharvest

// DefaultExcludeSelectors match navigation, header, footer, sidebar, menu
// and breadcrumb regions.
var DefaultExcludeSelectors = []string{
	"nav",
	"header",
	"footer",
	"aside",
	".nav",
	".navigation",
	".header",
	".footer",
	".sidebar",
	".menu",
	".breadcrumb",
	".breadcrumbs",
	"#nav",
	"#navigation",
	"#header",
	"#footer",
	"#sidebar",
	"#menu",
}

// DefaultMainSelectors are tried in order to find the main content root.
var DefaultMainSelectors = []string{
	"main",
	"article",
	".main",
	".main-content",
	".content",
	".mainContent",
	"#main",
	"#content",
	"#main-content",
	"[role='main']",
}

// Config is the static engine configuration. It is loaded once at startup
// and never mutated afterwards.
type Config struct {
	// TrackingParams are the query keys stripped from every harvested URL.
	TrackingParams []string `yaml:"tracking_params" validate:"dive,required"`

	// ExcludeSelectors mark boilerplate subtrees skipped by page scans.
	ExcludeSelectors []string `yaml:"exclude_selectors" validate:"dive,required"`

	// MainSelectors are tried in order; the first match becomes the
	// main content root.
	MainSelectors []string `yaml:"main_selectors" validate:"dive,required"`

	// CollapseNormalized drops results whose normalized form repeats an
	// earlier one. Off by default: distinct links are reported even when
	// they normalize to the same URL.
	CollapseNormalized bool `yaml:"collapse_normalized"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TrackingParams:   append([]string(nil), DefaultTrackingParams...),
		ExcludeSelectors: append([]string(nil), DefaultExcludeSelectors...),
		MainSelectors:    append([]string(nil), DefaultMainSelectors...),
	}
}
