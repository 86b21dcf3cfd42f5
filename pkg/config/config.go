package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Moderation  ModerationConfig
	IRC         IRCConfig
	GoogleCloud GoogleCloudConfig `yaml:"google_cloud"`
	Queue       QueueConfig
	Server      ServerConfig
}

type IRCConfig struct {
	Owner         string
	Admins        []string
	Server        string
	Port          int
	TLS           bool
	Nick          string
	Username      string `yaml:"user_name"`
	RealName      string `yaml:"real_name"`
	Channels      []string
	CommandPrefix string `yaml:"command_prefix"`
}

type GoogleCloudConfig struct {
	ProjectID              string `yaml:"project_id"`
	ServiceAccountFilename string `yaml:"service_account_filename"`
}

type QueueConfig struct {
	Topic        string
	Subscription string
}

type ServerConfig struct {
	Port      int
	JWTSecret string `yaml:"jwt_secret"`
}

// ReadConfig loads configuration from a yaml file. A missing file is not
// an error: the documented defaults are substituted so the moderation
// core always starts with a complete rule set.
func ReadConfig(filename string) (*Config, error) {
	f, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{Moderation: DefaultModerationConfig()}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(f, cfg)
	if err != nil {
		return nil, err
	}

	cfg.Moderation.applyDefaults()

	return cfg, nil
}
