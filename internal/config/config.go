package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Storage *storageConfig
	Service *svcConfig
}

type storageConfig struct {
	Driver string `envconfig:"FIELDFORMS_STORAGE_DRIVER" default:"badger" validate:"oneof=badger pebble sqlite memory"`
	Path   string `envconfig:"FIELDFORMS_STORAGE_PATH" default:""`
}

type svcConfig struct {
	LogLevel           string        `envconfig:"FIELDFORMS_LOG_LEVEL" default:"info"`
	SubmitBaseURL      string        `envconfig:"FIELDFORMS_SUBMIT_BASE_URL" default:"https://api.fieldforms.example"`
	SubmitTimeout      time.Duration `envconfig:"FIELDFORMS_SUBMIT_TIMEOUT" default:"10s"`
	UseMockSubmit      bool          `envconfig:"FIELDFORMS_USE_MOCK_SUBMIT" default:"true"`
	MaxUploadSize      int64         `envconfig:"FIELDFORMS_MAX_UPLOAD_SIZE" default:"10485760" validate:"gt=0"`
	UploadTick         time.Duration `envconfig:"FIELDFORMS_UPLOAD_TICK" default:"200ms"`
	UploadProcessDelay time.Duration `envconfig:"FIELDFORMS_UPLOAD_PROCESS_DELAY" default:"2s"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		if cfg.Storage.Path == "" {
			cfg.Storage.Path = filepath.Join(xdg.DataHome, "fieldforms")
		}
		if err := validator.New().Struct(cfg); err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}
