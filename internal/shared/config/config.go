package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	filterDomain "github.com/reshetovitsme/telewaves/internal/modules/filter/domain"
	"github.com/reshetovitsme/telewaves/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultDownloadDir = "/library"
	DefaultDataDir     = "/data"
	DefaultSessionName = "session"
	DefaultLogLevel    = "info"
	DefaultFeedTitle   = "TeleWaves library"
)

// Config is the process-wide, read-only configuration.
// Chats and Extensions are derived from the raw filter strings during Load.
type Config struct {
	TelegramAPIID    int    `koanf:"telegram_api_id" validate:"gt=0,lte=2147483647"`
	TelegramAPIHash  string `koanf:"telegram_api_hash" validate:"required"`
	DownloadDir      string `koanf:"download_dir" validate:"required"`
	DataDir          string `koanf:"data_dir" validate:"required"`
	SessionName      string `koanf:"session_name" validate:"required"`
	ChatFilter       string `koanf:"chat_filter"`
	ExtensionsFilter string `koanf:"extensions_filter"`
	LogLevel         string `koanf:"log_level" validate:"oneof=debug info warn error"`
	FeedPort         string `koanf:"feed_port" validate:"omitempty,numeric"`
	FeedTitle        string `koanf:"feed_title"`
	NotifyBotToken   string `koanf:"notify_bot_token"`
	NotifyChatID     int64  `koanf:"notify_chat_id" validate:"required_with=NotifyBotToken"`

	Chats      filterDomain.ChatFilter      `koanf:"-"`
	Extensions filterDomain.ExtensionFilter `koanf:"-"`
}

// SessionPath is where the Telegram client keeps its session.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, c.SessionName)
}

// FeedEnabled reports whether the library feed server should run.
func (c *Config) FeedEnabled() bool {
	return c.FeedPort != ""
}

// NotifyEnabled reports whether download notifications should be sent.
func (c *Config) NotifyEnabled() bool {
	return c.NotifyBotToken != "" && c.NotifyChatID != 0
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("download_dir") || k.String("download_dir") == "" {
		k.Set("download_dir", DefaultDownloadDir)
	}
	if !k.Exists("data_dir") || k.String("data_dir") == "" {
		k.Set("data_dir", DefaultDataDir)
	}
	if !k.Exists("session_name") || k.String("session_name") == "" {
		k.Set("session_name", DefaultSessionName)
	}
	if !k.Exists("log_level") || k.String("log_level") == "" {
		k.Set("log_level", DefaultLogLevel)
	}
	if !k.Exists("feed_title") || k.String("feed_title") == "" {
		k.Set("feed_title", DefaultFeedTitle)
	}

	// Credentials are checked by hand so the error names the variable
	apiID := strings.TrimSpace(k.String("telegram_api_id"))
	if apiID == "" {
		return nil, errors.ErrMissingAPIID
	}
	if _, err := strconv.Atoi(apiID); err != nil {
		return nil, oops.With("telegram_api_id", apiID).Wrap(errors.ErrInvalidAPIID)
	}
	if strings.TrimSpace(k.String("telegram_api_hash")) == "" {
		return nil, errors.ErrMissingAPIHash
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, oops.With("context", "validating config").Wrap(err)
	}

	chats, err := filterDomain.ParseChatFilter(cfg.ChatFilter)
	if err != nil {
		return nil, oops.With("chat_filter", cfg.ChatFilter).Wrap(err)
	}
	cfg.Chats = chats

	extensions, err := filterDomain.ParseExtensionFilter(cfg.ExtensionsFilter)
	if err != nil {
		return nil, oops.With("extensions_filter", cfg.ExtensionsFilter).Wrap(err)
	}
	cfg.Extensions = extensions

	for _, dir := range []string{cfg.DataDir, cfg.DownloadDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, oops.With("directory", dir, "context", "failed to create directory").Wrap(err)
		}
	}

	return &cfg, nil
}
