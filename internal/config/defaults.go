package config

// DefaultExcludes are glob patterns skipped when discovering documentation
// data files in the content directory.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"dist/**",
	"build/**",
	"**/*.bak",
	"**/*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:     "Portfolio",
		ContentDir:   "content/docs",
		ProjectsFile: "content/projects.json",
		OutputDir:    "public",
		DataDir:      ".showfolio",
		Port:         8080,
		Theme:        ThemeLight,
		Include:      []string{"**/*.json"},
		Exclude:      DefaultExcludes,
		CacheTTL:     "1h",
	}
}
