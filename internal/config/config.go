package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sdrdash/internal/talkgroup"
)

// Config holds the paths and timings the dashboard runs with.
type Config struct {
	LogDir         string
	TalkgroupsPath string
	ExportPath     string // empty disables the status export
	DebugLog       string
	IdleAfter      time.Duration
	PollEvery      time.Duration
	Backfill       int
	Rules          []talkgroup.Rule
}

const (
	defaultConfigPath     = "~/.config/sdrdash/config.toml"
	defaultLogDir         = "~/SDRTrunk/logs"
	defaultTalkgroupsFile = "talkgroups.tsv"
	defaultExportFile     = "sdrdash-status.txt"
	defaultDebugFile      = "sdrdash-debug.log"
	defaultIdleAfter      = 10 * time.Second
	defaultPollEvery      = 200 * time.Millisecond
)

type rawColor struct {
	Bucket string   `toml:"bucket"`
	Codes  []string `toml:"codes"`
}

type rawConfig struct {
	LogDir               string     `toml:"log_dir"`
	Talkgroups           string     `toml:"talkgroups"`
	ExportPath           string     `toml:"export_path"`
	DisableExport        bool       `toml:"disable_export"`
	DebugLog             string     `toml:"debug_log"`
	IdleSeconds          int        `toml:"idle_seconds"`
	PollMillis           int        `toml:"poll_millis"`
	Backfill             int        `toml:"backfill"`
	ReplaceDefaultColors bool       `toml:"replace_default_colors"`
	Colors               []rawColor `toml:"colors"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	logDir := mustExpand(defaultLogDir)
	return Config{
		LogDir:         logDir,
		TalkgroupsPath: filepath.Join(logDir, defaultTalkgroupsFile),
		ExportPath:     filepath.Join(os.TempDir(), defaultExportFile),
		DebugLog:       filepath.Join(os.TempDir(), defaultDebugFile),
		IdleAfter:      defaultIdleAfter,
		PollEvery:      defaultPollEvery,
		Rules:          talkgroup.DefaultRules(),
	}
}

// Load locates and parses the dashboard config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.apply(Default())
}

func (raw rawConfig) apply(cfg Config) (Config, error) {
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
		cfg.TalkgroupsPath = filepath.Join(cfg.LogDir, defaultTalkgroupsFile)
	}
	if tg := strings.TrimSpace(raw.Talkgroups); tg != "" {
		cfg.TalkgroupsPath = mustExpand(tg)
	}
	if p := strings.TrimSpace(raw.ExportPath); p != "" {
		cfg.ExportPath = mustExpand(p)
	}
	if raw.DisableExport {
		cfg.ExportPath = ""
	}
	if p := strings.TrimSpace(raw.DebugLog); p != "" {
		cfg.DebugLog = mustExpand(p)
	}
	if raw.IdleSeconds > 0 {
		cfg.IdleAfter = time.Duration(raw.IdleSeconds) * time.Second
	}
	if raw.PollMillis > 0 {
		cfg.PollEvery = time.Duration(raw.PollMillis) * time.Millisecond
	}
	if raw.Backfill > 0 {
		cfg.Backfill = raw.Backfill
	}

	if raw.ReplaceDefaultColors {
		cfg.Rules = nil
	}
	for i, c := range raw.Colors {
		bucket, err := talkgroup.ParseBucket(c.Bucket)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: colors[%d]: %w", i, err)
		}
		rule, err := talkgroup.NewRule(bucket, c.Codes...)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: colors[%d]: %w", i, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg, nil
}

// LogPath returns the uploader log for the calendar day of t.
func (c Config) LogPath(t time.Time) string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "rdio-"+t.Format("20060102")+".log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
