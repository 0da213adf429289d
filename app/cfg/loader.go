package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Content configuration
	ContentDir      string `long:"content-dir" env:"CONTENT_DIR" default:"./content/blog" description:"Directory containing blog post files (.md, .mdx)"`
	SiteFile        string `long:"site-file" env:"SITE_FILE" default:"./site.yml" description:"Site configuration file (hero, tabs, fonts, card variant)"`
	StaticDir       string `long:"static-dir" env:"STATIC_DIR" default:"./public" description:"Directory served under /assets"`
	ReadConcurrency int    `long:"read-concurrency" env:"READ_CONCURRENCY" default:"8" description:"Maximum number of post files read in parallel"`
	StrictContent   bool   `long:"strict-content" env:"STRICT_CONTENT" description:"Fail listings when any post is unreadable or malformed"`

	// Server configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL of the site (e.g., https://kronosguild.com)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for post dates (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses command-line flags and environment variables. It returns a nil
// config and no error when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs is Load with explicit arguments; nil means os.Args.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ReadConcurrency < 1 {
		return nil, fmt.Errorf("read concurrency must be at least 1, got %d", raw.ReadConcurrency)
	}

	cfg := &Cfg{
		ContentDir:      raw.ContentDir,
		SiteFile:        raw.SiteFile,
		StaticDir:       raw.StaticDir,
		ReadConcurrency: raw.ReadConcurrency,
		StrictContent:   raw.StrictContent,
		Port:            raw.Port,
		BaseUrl:         strings.TrimRight(raw.BaseUrl, "/"),
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
