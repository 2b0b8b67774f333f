package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. The caller is responsible for saving it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to showfolio! Let's configure your site.")
	fmt.Println()

	defaults := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: defaults.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	authorPrompt := promptui.Prompt{
		Label:   "Author (shown in the footer)",
		Default: "",
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"light", "dark"},
	}
	_, themeStr, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	contentPrompt := promptui.Prompt{
		Label:   "Documentation content directory",
		Default: defaults.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	cfg := DefaultConfig()
	cfg.SiteName = siteName
	cfg.Author = author
	cfg.Theme = Theme(themeStr)
	cfg.ContentDir = contentDir
	cfg.Port = port

	return cfg, nil
}
