package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/form"
	"github.com/samandr77/microservices/onboarding/internal/listing"
	"github.com/samandr77/microservices/onboarding/internal/tui"
	"github.com/samandr77/microservices/onboarding/pkg/job"
	"github.com/samandr77/microservices/onboarding/pkg/logger"
)

const browseCmdName = "browse"

var errInvalidDraft = errors.New("draft has errors")

func newTemplateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a blank draft to fill in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeTemplate(cmd.OutOrStdout(), a.template())
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <draft-file|->",
		Short: "Check a draft against the onboarding rules without sending it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadForm(a, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, ok := form.Submit(s, a.svc.Rules())
			if !ok {
				printErrors(cmd, s)
				return errInvalidDraft
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Draft is valid.")

			return nil
		},
	}
}

func newSubmitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <draft-file|->",
		Short: "Validate a draft and save it through the admin API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithNewRequestID(cmd.Context())

			s, err := loadForm(a, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			s, ok := form.Submit(s, a.svc.Rules())
			if !ok {
				printErrors(cmd, s)
				return errInvalidDraft
			}

			err = a.svc.Submit(ctx, s.Values)
			if err != nil {
				s = form.Failed(s)
				cmd.PrintErrln(s.Notice)

				return err
			}

			s = form.Succeeded(s, a.template())
			fmt.Fprintln(cmd.OutOrStdout(), s.Notice)

			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var q entity.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of saved applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logger.WithNewRequestID(cmd.Context())

			if !cmd.Flags().Changed("size") {
				q.Size = a.cfg.List.PageSize
			}

			page, err := a.svc.ListApplications(ctx, q)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(page.Items, q.Page, q.Size, page.TotalPages, page.TotalElements))

			return nil
		},
	}

	cmd.Flags().IntVar(&q.Page, "page", 1, "one-based page number")
	cmd.Flags().IntVar(&q.Size, "size", listing.DefaultPageSize, "page size (defaults to ONBOARD_PAGE_SIZE)")
	cmd.Flags().StringVar(&q.Search, "search", "", "search term")

	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   browseCmdName,
		Short: "Browse saved applications interactively with live search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			c := listing.New(a.svc, listing.Options{
				PageSize: a.cfg.List.PageSize,
				Debounce: a.cfg.List.SearchDebounce,
				Logger:   slog.Default(),
			})
			defer c.Close()

			a.svc.OnSaved(func(token uint64) { c.Refresh(token) })

			jobs := job.NewService().
				RegisterDelayedJob("auto refresh", a.cfg.List.AutoRefresh, a.svc.Bump).
				Start(ctx)

			defer func() {
				cancel()
				jobs.Stop()
			}()

			p := tea.NewProgram(tui.New(ctx, c), tea.WithAltScreen(), tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			c.Subscribe(tui.Subscriber(p))

			_, err := p.Run()
			if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("run browser: %w", err)
			}

			return nil
		},
	}
}

func printErrors(cmd *cobra.Command, s form.State) {
	cmd.PrintErrln(s.Notice)
	cmd.PrintErrln(tui.RenderErrors(s.Errors.Fields(), s.Errors))
}
