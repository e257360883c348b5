package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"wordguard/pkg/stream"
)

type Config struct {
	ServiceName string `toml:"serviceName"`
	// WordList is a file path or an http(s) URL.
	WordList        string `toml:"wordList"`
	CensorCharacter string `toml:"censorCharacter"`

	HTTPAddr   string `toml:"httpAddr"`
	LogLevel   string `toml:"logLevel"`
	KafkaAddr  string `toml:"kafkaAddr"`
	KafkaTopic string `toml:"kafkaTopic"`
	KafkaBatch int    `toml:"kafkaBatch"`

	Moderation stream.Config `toml:"moderation"`
}

func defaultConfig() Config {
	return Config{
		ServiceName:     "wordguard",
		CensorCharacter: "*",
		HTTPAddr:        ":8055",
		LogLevel:        "info",
		KafkaBatch:      1,
		Moderation: stream.Config{
			GroupID:    "wordguard",
			NumWorkers: 4,
		},
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("[server] unknown config key %q in %s", key.String(), path)
	}

	return cfg, nil
}

// overrides holds flag values; zero values leave the config untouched.
type overrides struct {
	wordList   string
	character  string
	httpAddr   string
	logLevel   string
	kafkaAddr  string
	kafkaTopic string
	kafkaBatch int
}

func (cfg *Config) override(o overrides) {
	if o.wordList != "" {
		cfg.WordList = o.wordList
	}
	if o.character != "" {
		cfg.CensorCharacter = o.character
	}
	if o.httpAddr != "" {
		cfg.HTTPAddr = o.httpAddr
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.kafkaAddr != "" {
		cfg.KafkaAddr = o.kafkaAddr
	}
	if o.kafkaTopic != "" {
		cfg.KafkaTopic = o.kafkaTopic
	}
	if o.kafkaBatch != 0 {
		cfg.KafkaBatch = o.kafkaBatch
	}
}

func (cfg Config) Validate() error {
	var errs []error

	if cfg.WordList == "" {
		errs = append(errs, errors.New("wordList is required"))
	}
	if !strings.Contains(cfg.HTTPAddr, ":") {
		errs = append(errs, fmt.Errorf("httpAddr %q must be in the form 'host:port' or ':port'", cfg.HTTPAddr))
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}
	if (cfg.KafkaAddr == "") != (cfg.KafkaTopic == "") {
		errs = append(errs, errors.New("kafkaAddr and kafkaTopic must be set together"))
	}
	if cfg.KafkaBatch < 0 {
		errs = append(errs, fmt.Errorf("kafkaBatch must not be negative, got %d", cfg.KafkaBatch))
	}
	if cfg.Moderation.Enabled() {
		if err := cfg.Moderation.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
