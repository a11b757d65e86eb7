// Package config resolves the interactive builder's settings from a .env
// file, FORMBUILDER_* environment variables and command line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-formbuilder/pkg/export"
)

const (
	IDsTimestamp = "timestamp"
	IDsUUID      = "uuid"
)

type Config struct {
	// IDs selects the node id generator: "timestamp" or "uuid".
	IDs    string
	Format export.Format
	// PaletteDir overrides the embedded palette when set.
	PaletteDir string
	// Output is the export destination; empty writes to stdout.
	Output string
	Debug  bool
}

// Load reads envFiles (".env" when none are given, missing files are
// ignored), then parses args. Environment variables provide the flag
// defaults, so an explicit flag always wins.
func Load(args []string, envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	fs := flag.NewFlagSet("formbuilder", flag.ContinueOnError)
	ids := fs.String("ids", firstNonEmpty(env("IDS"), IDsTimestamp), "node id generator: timestamp or uuid")
	format := fs.String("format", firstNonEmpty(env("FORMAT"), string(export.FormatJSON)), "export format: json, yaml or openapi")
	paletteDir := fs.String("palette", env("PALETTE"), "directory of palette YAML/JSON files (embedded palette when empty)")
	output := fs.String("output", env("OUTPUT"), "export file path (stdout when empty)")
	debug := fs.Bool("debug", envBool("DEBUG"), "log session transitions and check consistency after each action")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		IDs:        strings.ToLower(strings.TrimSpace(*ids)),
		PaletteDir: strings.TrimSpace(*paletteDir),
		Output:     strings.TrimSpace(*output),
		Debug:      *debug,
	}
	if cfg.IDs != IDsTimestamp && cfg.IDs != IDsUUID {
		return nil, fmt.Errorf("config: unknown id generator %q", *ids)
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Format = f
	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv("FORMBUILDER_" + key))
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(env(key))
	if err != nil {
		return false
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
