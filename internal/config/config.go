package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"usbcopy/internal/domain"
)

const DefaultReportPath = "simulated_copy_log.txt"

// Flags carries the raw command-line values before layering. Ignore lists are
// comma-separated; an empty string means "not set".
type Flags struct {
	Source      string
	Target      string
	DryRun      bool
	Verbose     bool
	Interactive bool
	Report      string
	ConfigFile  string
	IgnoreDirs  string
	IgnoreExts  string
	IgnoreFiles string
}

type Config struct {
	SourceDir   string
	TargetDir   string
	DryRun      bool
	Verbose     bool
	Interactive bool
	ReportPath  string
	IgnoreDirs  []string
	IgnoreExts  []string
	IgnoreFiles []string
}

// fileConfig mirrors ~/.config/usbcopy/config.toml.
type fileConfig struct {
	IgnoreDirs  []string `toml:"ignore_dirs"`
	IgnoreExts  []string `toml:"ignore_exts"`
	IgnoreFiles []string `toml:"ignore_files"`
	ReportPath  *string  `toml:"report_path"`
}

// Exclusions builds the run's exclusion predicate from the resolved lists.
func (c Config) Exclusions() domain.ExclusionConfig {
	return domain.NewExclusionConfig(c.IgnoreDirs, c.IgnoreExts, c.IgnoreFiles)
}

// Resolve layers flags over environment variables, the TOML config file, and
// built-in defaults, first hit winning per field.
func Resolve(f Flags, warnf func(format string, args ...any)) (Config, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	cfg := Config{
		SourceDir:   f.Source,
		TargetDir:   f.Target,
		DryRun:      f.DryRun,
		Verbose:     f.Verbose,
		Interactive: f.Interactive,
		ReportPath:  f.Report,
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = envOrEmpty("USBCOPY_SOURCE")
	}
	if cfg.TargetDir == "" {
		cfg.TargetDir = envOrEmpty("USBCOPY_TARGET")
	}
	if !cfg.DryRun {
		cfg.DryRun = envTruthy("USBCOPY_DRY_RUN")
	}
	if !cfg.Verbose {
		cfg.Verbose = envTruthy("USBCOPY_VERBOSE")
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = envOrEmpty("USBCOPY_REPORT")
	}

	fileCfg, err := loadFile(f.ConfigFile, warnf)
	if err != nil {
		return Config{}, err
	}

	cfg.IgnoreDirs = pickList(splitList(f.IgnoreDirs), fileCfg.IgnoreDirs, domain.DefaultIgnoreDirs)
	cfg.IgnoreExts = pickList(splitList(f.IgnoreExts), fileCfg.IgnoreExts, domain.DefaultIgnoreExts)
	cfg.IgnoreFiles = pickList(splitList(f.IgnoreFiles), fileCfg.IgnoreFiles, domain.DefaultIgnoreFiles)

	if cfg.ReportPath == "" && fileCfg.ReportPath != nil {
		cfg.ReportPath = *fileCfg.ReportPath
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = DefaultReportPath
	}

	if cfg.SourceDir == "" {
		return Config{}, errors.New("source is required")
	}

	return cfg, nil
}

// loadFile reads the TOML config. A missing default file is fine; a missing
// explicitly requested file is not.
func loadFile(customPath string, warnf func(format string, args ...any)) (fileConfig, error) {
	var cfg fileConfig

	path := customPath
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			warnf("could not determine home directory, skipping config file: %v", err)
			return cfg, nil
		}
		path = filepath.Join(homeDir, ".config", "usbcopy", "config.toml")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if customPath != "" {
				return cfg, fmt.Errorf("config file %s not found", path)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	meta, err := toml.Decode(string(content), &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		warnf("unrecognized keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

func pickList(flag, file, fallback []string) []string {
	if len(flag) > 0 {
		return flag
	}
	if len(file) > 0 {
		return file
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
