package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const defaultIntervalSeconds = 300

// File mirrors the JSON configuration document: a required ordered list of
// target URLs and an optional probe interval in seconds.
type File struct {
	URLs     []string `mapstructure:"urls"`
	Interval int      `mapstructure:"interval"`
}

// Config is everything the process needs, assembled once at startup and
// immutable afterwards.
type Config struct {
	Targets  []string
	Interval time.Duration

	LogDir  string // logs directory
	APIAddr string // status API bind address; empty disables the API

	Telegram Telegram
}

// Telegram credentials. APIURL is normally left empty and defaulted by the
// notifier; Token and ChatID are mandatory.
type Telegram struct {
	APIURL string
	Token  string
	ChatID string
}

// Load reads and validates the JSON config file at path. A missing file,
// malformed JSON, or a missing/empty urls key is an error; the caller is
// expected to treat that as fatal.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("interval", defaultIntervalSeconds)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Targets:  f.URLs,
		Interval: time.Duration(f.Interval) * time.Second,
		LogDir:   envOr("LOG_DIR", "logs"),
		APIAddr:  os.Getenv("API_ADDR"),
	}
	return cfg, nil
}

func (f File) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.URLs,
			validation.Required,
			validation.Length(1, 0),
			validation.Each(validation.By(validateTargetURL)),
		),
		validation.Field(&f.Interval,
			validation.Required,
			validation.Min(1),
		),
	)
}

func validateTargetURL(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if raw == "" {
		return validation.NewError("validation_empty_url", "target URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}
	if u.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}
	return nil
}

// TelegramFromEnv reads credentials from the environment. It is called
// before anything touches the network so a missing credential aborts the
// process with zero outbound calls.
func TelegramFromEnv() (Telegram, error) {
	t := Telegram{
		APIURL: os.Getenv("TELEGRAM_API_URL"),
		Token:  os.Getenv("TELEGRAM_TOKEN"),
		ChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}
	if t.Token == "" || t.ChatID == "" {
		return Telegram{}, errors.New("TELEGRAM_TOKEN or TELEGRAM_CHAT_ID not found")
	}
	return t, nil
}

// Path returns the config file location, CONFIG_PATH or ./config.json.
func Path() string {
	return envOr("CONFIG_PATH", "./config.json")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
