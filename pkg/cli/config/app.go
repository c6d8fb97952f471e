package config

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

// AppConfig is the optional TOML application configuration. It declares
// note categories that should exist on startup.
type AppConfig struct {
	Categories []Category `toml:"category"`

	path string
}

// Category is a note category declared in the config file
type Category struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks if the Category is valid
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return goerr.New("category name is required")
	}
	if c.Color != "" && !hexColor.MatchString(c.Color) {
		return goerr.New("category color must be a #rrggbb value",
			goerr.V("name", c.Name), goerr.V("color", c.Color))
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range a.Categories {
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category")
		}
		key := strings.ToLower(cat.Name)
		if seen[key] {
			return goerr.New("duplicate category name", goerr.V("name", cat.Name))
		}
		seen[key] = true
	}
	return nil
}

// Flags returns CLI flags for the application config file
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML application config file",
			Sources:     cli.EnvVars("BLUEPRINT_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Load reads and validates the config file. A missing --config flag
// yields an empty configuration.
func (a *AppConfig) Load() error {
	if a.path == "" {
		return nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", a.path))
	}
	if err := toml.Unmarshal(data, a); err != nil {
		return goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", a.path))
	}
	if err := a.Validate(); err != nil {
		return goerr.Wrap(err, "config validation failed", goerr.V("path", a.path))
	}
	return nil
}

// Apply ensures every declared category exists in the repository.
// Existing categories are matched by case-insensitive name and left as is.
func (a *AppConfig) Apply(ctx context.Context, repo interfaces.Repository) error {
	if len(a.Categories) == 0 {
		return nil
	}

	existing, err := repo.Category().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list categories")
	}
	known := make(map[string]bool, len(existing))
	for _, cat := range existing {
		known[strings.ToLower(cat.Name)] = true
	}

	for _, cat := range a.Categories {
		if known[strings.ToLower(cat.Name)] {
			continue
		}
		color := cat.Color
		if color == "" {
			color = "#1a73e8"
		}
		created, err := repo.Category().Create(ctx, &model.CreateCategoryInput{
			Name:  cat.Name,
			Color: color,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to create configured category", goerr.V("name", cat.Name))
		}
		logging.Default().Info("created configured category", "name", created.Name, "id", created.ID)
	}
	return nil
}
