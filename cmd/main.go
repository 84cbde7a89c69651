package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/onboarding/internal/clients/onboarding"
	"github.com/samandr77/microservices/onboarding/internal/service"
	"github.com/samandr77/microservices/onboarding/internal/validation"
	"github.com/samandr77/microservices/onboarding/pkg/config"
	"github.com/samandr77/microservices/onboarding/pkg/logger"
)

// flags override values loaded from the environment.
type flags struct {
	envPath  string
	apiURL   string
	token    string
	logLevel string
}

// app holds what every command needs once config is loaded.
type app struct {
	cfg config.Config
	svc *service.Service
	// closeLog releases the browse log file.
	closeLog func() error
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		f flags
		a = &app{closeLog: func() error { return nil }}
	)

	root := &cobra.Command{
		Use:   "onboard",
		Short: "Prepare, submit and browse merchant onboarding applications",
		Long: `onboard talks to the admin API of the merchant onboarding backend.

Drafts are YAML or JSON files keyed by the API field names, see "onboard template".
Configuration comes from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, f)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.closeLog()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.envPath, "env", ".env", "path to an optional .env file")
	pf.StringVar(&f.apiURL, "api-url", "", "admin API base URL (overrides ONBOARD_API_URL)")
	pf.StringVar(&f.token, "token", "", "bearer token (overrides ONBOARD_API_TOKEN)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newTemplateCmd(a),
		newValidateCmd(a),
		newSubmitCmd(a),
		newListCmd(a),
		newBrowseCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command, f flags) error {
	cfg, err := config.New(f.envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if f.apiURL != "" {
		cfg.API.BaseURL = f.apiURL
	}

	if f.token != "" {
		cfg.API.Token = f.token
	}

	if f.logLevel != "" {
		cfg.Logger.Level = f.logLevel
	}

	var logOut io.Writer = cmd.ErrOrStderr()

	// The browser owns the terminal, so its logs go to a file or nowhere.
	if cmd.Name() == browseCmdName {
		logOut = io.Discard

		if cfg.Logger.File != "" {
			file, err := os.OpenFile(cfg.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}

			logOut = file
			a.closeLog = file.Close
		}
	}

	_, err = logger.NewWithWriter(cfg.Logger.Level, logOut)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.svc = service.New(onboarding.NewClient(cfg.API), validation.Onboarding())

	return nil
}
