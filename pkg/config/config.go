package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	API         API
	Logger      Logger
	Application Application
	List        List
}

type API struct {
	BaseURL       string        `env:"ONBOARD_API_URL" envDefault:"http://localhost:8080"`
	Token         string        `env:"ONBOARD_API_TOKEN"`
	AdminID       int           `env:"ONBOARD_ADMIN_ID" envDefault:"1"`
	Timeout       time.Duration `env:"ONBOARD_API_TIMEOUT" envDefault:"5s"`
	RetryAttempts int           `env:"ONBOARD_API_RETRY_ATTEMPTS" envDefault:"0"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// File receives logs of the interactive browser. Empty means stderr.
	File string `env:"LOG_FILE"`
}

type Application struct {
	AgentID       int    `env:"ONBOARD_AGENT_ID" envDefault:"1027"`
	DocPathPrefix string `env:"ONBOARD_DOC_PATH_PREFIX" envDefault:"/documents/applications/"`
}

type List struct {
	PageSize       int           `env:"ONBOARD_PAGE_SIZE" envDefault:"10"`
	SearchDebounce time.Duration `env:"ONBOARD_SEARCH_DEBOUNCE" envDefault:"500ms"`
	AutoRefresh    time.Duration `env:"ONBOARD_AUTO_REFRESH" envDefault:"0s"`
}

var (
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrInvalidAdminID  = errors.New("admin id must be positive")
)

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	err = c.Validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.List.PageSize <= 0 {
		return ErrInvalidPageSize
	}

	if c.API.AdminID <= 0 {
		return ErrInvalidAdminID
	}

	return nil
}
