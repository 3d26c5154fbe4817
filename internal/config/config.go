// Package config loads the user's settings file.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/bw-notes/bw/internal/format"
	"github.com/bw-notes/bw/internal/fs"
)

const (
	dirPerms  = 0o755
	filePerms = 0o644

	maxWelcomeDelay = 255
)

// Settings holds all configuration options.
type Settings struct {
	WelcomeMessage   string `json:"welcome_message"`
	WelcomeDelay     int    `json:"welcome_delay"` // milliseconds per banner character
	Prompt           string `json:"prompt"`
	PromptUserPrefix string `json:"prompt_user_prefix"`
	PromptUserSuffix string `json:"prompt_user_suffix"`
	PageRefPrefix    string `json:"page_ref_prefix"`
	PageRefInfix     string `json:"page_ref_infix"`
	PageRefSuffix    string `json:"page_ref_suffix"`
	DataDir          string `json:"data_dir"` // empty means the default data directory

	// Sources tracks where the settings came from (for diagnostics).
	Sources Sources `json:"-"`
}

// Sources tracks which settings file was used.
type Sources struct {
	File    string // path of the settings file read or written, empty if none
	Created bool   // File was written with defaults during this load
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		WelcomeMessage:   "WELCOME",
		WelcomeDelay:     100,
		Prompt:           ":> ",
		PromptUserPrefix: "< ",
		PromptUserSuffix: ": ",
		PageRefPrefix:    "p.",
		PageRefInfix:     "-p.",
		PageRefSuffix:    "",
	}
}

// Templates returns the page-reference templates used for rendering.
func (s Settings) Templates() format.Templates {
	return format.Templates{
		PagePrefix: s.PageRefPrefix,
		PageInfix:  s.PageRefInfix,
		PageSuffix: s.PageRefSuffix,
	}
}

// DefaultPath returns the default settings path.
// Uses $XDG_CONFIG_HOME/bw/settings.json if set, otherwise
// ~/.config/bw/settings.json. Returns empty string if neither is known.
func DefaultPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "bw", "settings.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "bw", "settings.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	ConfigPath      string            // -c/--config flag value
	DataDirOverride string            // --data-dir flag value; empty means no override
	Env             map[string]string // environment variables
}

// Load resolves settings with the following precedence (highest wins):
// 1. Defaults
// 2. Settings file (explicit --config, else the default path)
// 3. CLI overrides.
//
// A missing explicit file is an error. A missing default file is created
// with the defaults; failing to create it is logged and ignored.
func Load(fsys fs.FS, input LoadInput, logger *slog.Logger) (Settings, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	settings := DefaultSettings()

	path := input.ConfigPath
	mustExist := path != ""

	if !mustExist {
		path = DefaultPath(input.Env)
	}

	if path != "" {
		exists, err := fsys.Exists(path)
		if err != nil {
			return Settings{}, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
		}

		switch {
		case exists:
			settings, err = loadFile(fsys, path)
			if err != nil {
				return Settings{}, err
			}

			settings.Sources.File = path
		case mustExist:
			return Settings{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		default:
			err = writeDefaults(fsys, path)
			if err != nil {
				logger.Warn("default settings not written", "path", path, "err", err)
			} else {
				settings.Sources = Sources{File: path, Created: true}
			}
		}
	}

	if input.DataDirOverride != "" {
		settings.DataDir = input.DataDirOverride
	}

	return settings, nil
}

func loadFile(fsys fs.FS, path string) (Settings, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	settings, err := parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return settings, nil
}

// parse decodes JSONC over the defaults, so absent keys keep their default
// and keys set to "" stay empty.
func parse(data []byte) (Settings, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	settings := DefaultSettings()

	err = json.Unmarshal(standardized, &settings)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if settings.WelcomeDelay < 0 || settings.WelcomeDelay > maxWelcomeDelay {
		return Settings{}, fmt.Errorf("%w, got %d", ErrWelcomeDelayRange, settings.WelcomeDelay)
	}

	return settings, nil
}

func writeDefaults(fsys fs.FS, path string) error {
	data, err := json.MarshalIndent(DefaultSettings(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}

	err = fsys.MkdirAll(filepath.Dir(path), dirPerms)
	if err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return fsys.WriteFileAtomic(path, append(data, '\n'), filePerms)
}
