package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showfolio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "showfolio",
	Short: "Personal portfolio site with a structured documentation viewer",
	Long: `Showfolio turns JSON content files into a personal portfolio website:
a documentation viewer with typed content sections, a projects
showcase, and visitor uploads. It can serve the site live or build a
static copy for plain file hosting.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".showfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the config, providing a friendly
// error when it is missing.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `showfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
