package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"showfolio/internal/logging"
	"showfolio/internal/progress"
	"showfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static site",
	Long: `Renders every page into a self-contained static site: the selector,
one viewer page per documentation set, the projects showcase, the
search index, and the shared assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := logging.New(cfg.LogFile, verbose)
		defer logger.Sync()

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.OutputDir = out
		}

		b := &site.Builder{
			ContentDir:   cfg.ContentDir,
			ProjectsFile: cfg.ProjectsFile,
			OutputDir:    cfg.OutputDir,
			SiteName:     cfg.SiteName,
			Theme:        string(cfg.Theme),
			Include:      cfg.Include,
			Exclude:      cfg.Exclude,
			Reporter:     progress.NewReporter(),
			Logger:       logger,
		}
		pageCount, err := b.Build()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		fmt.Printf("Static site built: %s (%d pages)\n", cfg.OutputDir, pageCount)

		if serve, _ := cmd.Flags().GetBool("serve"); serve {
			port, _ := cmd.Flags().GetInt("port")
			open, _ := cmd.Flags().GetBool("open")
			return site.Serve(cfg.OutputDir, port, open)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().String("output", "", "override the configured output directory")
	buildCmd.Flags().Bool("serve", false, "serve the built site locally afterwards")
	buildCmd.Flags().Int("port", 8080, "port for the local preview server")
	buildCmd.Flags().Bool("open", false, "open the browser when serving")
	rootCmd.AddCommand(buildCmd)
}
