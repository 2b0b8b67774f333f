package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"showfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure showfolio with an interactive wizard",
	Long: `Runs an interactive wizard, writes .showfolio.yml, and scaffolds
sample content so the site renders out of the box.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", cfgFile)

		if skip, _ := cmd.Flags().GetBool("no-scaffold"); !skip {
			if err := scaffoldContent(cfg); err != nil {
				return fmt.Errorf("scaffolding content: %w", err)
			}
		}

		fmt.Println("Run `showfolio serve` to start the site.")
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("no-scaffold", false, "skip creating sample content files")
	rootCmd.AddCommand(initCmd)
}

// scaffoldContent writes a minimal working content set. Existing files
// are never overwritten.
func scaffoldContent(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.ProjectsFile), 0o755); err != nil {
		return err
	}

	files := map[string]string{
		filepath.Join(cfg.ContentDir, "index.json"):           sampleIndex,
		filepath.Join(cfg.ContentDir, "getting-started.json"): sampleDoc,
		cfg.ProjectsFile:                                      sampleProjects,
	}
	for path, data := range files {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
	}
	return nil
}

const sampleIndex = `[
  {
    "id": "getting-started",
    "title": "Getting Started",
    "description": "How this site is put together and how to add your own content.",
    "tags": ["guide"]
  }
]
`

const sampleDoc = `{
  "id": "getting-started",
  "title": "Getting Started",
  "description": "How this site is put together.",
  "content": {
    "sections": [
      {
        "id": "welcome",
        "title": "Welcome",
        "content": [
          {"type": "paragraph", "text": "This page is rendered from a JSON content file. Edit it, or add new files next to it, and they appear on the selector."},
          {"type": "list", "items": ["Sections become sidebar entries", "Subsections nest one level deep", "Code blocks get highlighting and a copy button"]}
        ]
      },
      {
        "id": "content-types",
        "title": "Content Types",
        "content": [
          {"type": "subheading", "text": "Code"},
          {"type": "code", "language": "json", "text": "{\"type\": \"paragraph\", \"text\": \"Hello\"}"},
          {
            "type": "subSection",
            "id": "faq",
            "title": "Questions",
            "content": [
              {"type": "faq", "items": [
                {"question": "Where does project data live?", "answer": "In the projects JSON file configured in .showfolio.yml."}
              ]}
            ]
          }
        ]
      }
    ]
  }
}
`

const sampleProjects = `[
  {
    "id": "showfolio",
    "title": "This Site",
    "description": "A portfolio site rendered from JSON content files.",
    "category": "web",
    "technologies": ["Go"]
  }
]
`
