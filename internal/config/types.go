package config

// Theme identifies a site color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level showfolio configuration, corresponding to .showfolio.yml.
type Config struct {
	SiteName     string   `yaml:"site_name" koanf:"site_name"`
	Author       string   `yaml:"author" koanf:"author"`
	ContentDir   string   `yaml:"content_dir" koanf:"content_dir"`
	ProjectsFile string   `yaml:"projects_file" koanf:"projects_file"`
	OutputDir    string   `yaml:"output_dir" koanf:"output_dir"`
	DataDir      string   `yaml:"data_dir" koanf:"data_dir"`
	Port         int      `yaml:"port" koanf:"port"`
	Theme        Theme    `yaml:"theme" koanf:"theme"`
	LogFile      string   `yaml:"log_file" koanf:"log_file"`
	Include      []string `yaml:"include" koanf:"include"`
	Exclude      []string `yaml:"exclude" koanf:"exclude"`
	CacheTTL     string   `yaml:"cache_ttl" koanf:"cache_ttl"`
}
