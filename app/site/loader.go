package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kronos-guild/website/app/blog"
	"github.com/kronos-guild/website/app/card"
)

var fontExtensions = map[string]bool{
	".otf":   true,
	".ttf":   true,
	".woff":  true,
	".woff2": true,
}

// Default returns the built-in site configuration.
func Default() *Config {
	return &Config{
		Title:        "Kronos Guild",
		Description:  "Learn. Create. Build. How to build on Solana by building on Solana.",
		PreviewImage: "/thumbnail.jpg",
		Hero: Hero{
			Headline:  "Learn. Create.",
			Highlight: "Build.",
			Tagline:   "Learn how to create on Solana by building real Solana projects. The best way to learn.",
			Logo:      "/kronos-guild-logo.svg",
			LogoAlt:   "The Kronos Guild logo",
			Clock:     "/kronos-clock.svg",
		},
		Footer:    "Kronos Guild Blog",
		BlogTitle: "Kronos Guild Blog",
		Fonts: Fonts{
			Display: Font{Family: "Caryotype", File: "fonts/Caryotype-Bold.otf", Weight: "700"},
			Accent:  Font{Family: "FK Raster Grotesk Compact", File: "fonts/FKRasterGroteskCompact-Rounded.otf", Weight: "100"},
		},
		Tabs: []Tab{
			{Name: "Learn", Kind: TabPosts},
			{Name: "Create", Kind: TabComingSoon},
			{Name: "Build", Kind: TabComingSoon},
		},
		PlaceholderImage: card.DefaultPlaceholderImage,
		CardVariant:      card.DefaultVariant,
	}
}

// Load reads a site file on top of the defaults. A missing file yields the
// defaults.
func Load(siteFile string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(siteFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Site file not found, using defaults", "path", siteFile)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", siteFile, err)
	}

	slog.Debug("Site configuration loaded", "path", siteFile, "tabs", len(config.Tabs), "variant", config.CardVariant)

	return config, nil
}

// PostsTab returns the name of the tab that lists posts, if any.
func (c *Config) PostsTab() string {
	for _, tab := range c.Tabs {
		if tab.Kind == TabPosts {
			return tab.Name
		}
	}
	return ""
}

func validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	requiredFields := map[string]string{
		"title":  config.Title,
		"footer": config.Footer,
	}

	for fieldName, fieldValue := range requiredFields {
		if strings.TrimSpace(fieldValue) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}

	if !card.IsVariant(config.CardVariant) {
		return fmt.Errorf("unknown card variant: %s", config.CardVariant)
	}

	for role, font := range map[string]Font{"display": config.Fonts.Display, "accent": config.Fonts.Accent} {
		if font.File == "" {
			continue
		}
		if !fontExtensions[strings.ToLower(path.Ext(font.File))] {
			return fmt.Errorf("%s font has unsupported file type: %s", role, font.File)
		}
		if font.Family == "" {
			return fmt.Errorf("%s font family is required", role)
		}
	}

	if len(config.Tabs) == 0 {
		return fmt.Errorf("at least one tab is required")
	}

	names := make(map[string]bool, len(config.Tabs))
	postTabs := 0
	for i, tab := range config.Tabs {
		if tab.Name == "" {
			return fmt.Errorf("tab at index %d must have a name", i)
		}
		if names[tab.Name] {
			return fmt.Errorf("duplicate tab name: %s", tab.Name)
		}
		names[tab.Name] = true

		switch tab.Kind {
		case TabPosts:
			postTabs++
		case TabComingSoon:
		default:
			return fmt.Errorf("tab %s has invalid kind: %s", tab.Name, tab.Kind)
		}
	}
	if postTabs > 1 {
		return fmt.Errorf("only one tab can list posts, got %d", postTabs)
	}

	return blog.ValidateFilters(config.Filters)
}
