package main

import (
	"context"
	"fmt"
	"io"

	"codeberg.org/mutker/goresult/errs"
	"codeberg.org/mutker/goresult/internal/config"
	"codeberg.org/mutker/goresult/internal/errors"
	"codeberg.org/mutker/goresult/internal/logger"
	"codeberg.org/mutker/goresult/internal/users"
	"codeberg.org/mutker/goresult/result"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
	svc users.Service
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "resultdemo",
		Short:         "Sample scenarios for the result and errs packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.createCommand(),
		a.getCommand(),
		a.listCommand(),
		a.seedCommand(),
		a.examplesCommand(),
	)

	return root, a
}

// close releases the users database, if it was opened
func (a *app) close() error {
	if a.svc == nil {
		return nil
	}
	err := a.svc.Close()
	a.svc = nil

	return err
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to load config: %v\n", err)
		return err
	}
	a.cfg = cfg

	logger.Init(cfg.LogLevel == config.LogLevelDebug, false, logger.IsService())
	if level, ok := logger.ParseLevel(cfg.LogLevel.String()); ok {
		logger.SetLogLevel(level)
	}
	logger.Debug().
		Str("db", cfg.DBPath).
		Str("log_level", cfg.LogLevel.String()).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Config loaded")

	svc, err := users.NewService(users.Config{
		DBPath:   cfg.DBPath,
		CacheTTL: cfg.CacheTTL,
	}, logger.Default())
	if err != nil {
		logger.ErrorWithErr(errors.ToErr(err)).Msg("Failed to open users database")
		return err
	}
	a.svc = svc

	return nil
}

func (a *app) createCommand() *cobra.Command {
	var (
		firstname, lastname string
		age                 int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and store a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.svc.Register(cmd.Context(), firstname, lastname, age)
			return report(cmd.OutOrStdout(), res, printUser)
		},
	}
	cmd.Flags().StringVar(&firstname, "firstname", "", "First name")
	cmd.Flags().StringVar(&lastname, "lastname", "", "Last name")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")

	return cmd
}

func (a *app) getCommand() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a user by id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd.OutOrStdout(), a.svc.Get(cmd.Context(), id), printUser)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "User id")

	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd.OutOrStdout(), a.svc.List(cmd.Context()), func(w io.Writer, list []users.User) {
				for _, u := range list {
					printUser(w, u)
				}
			})
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample users into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report(cmd.OutOrStdout(), a.svc.Seed(cmd.Context()), func(w io.Writer, n int) {
				fmt.Fprintf(w, "success => %d users inserted\n", n)
			})
		},
	}
}

// examplesCommand runs the two sample scenarios: validating a new user and
// looking up a stored one
func (a *app) examplesCommand() *cobra.Command {
	var (
		firstname, lastname string
		age                 int
		id                  int64
	)

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Run the sample scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExamples(cmd.Context(), cmd.OutOrStdout(), a.svc, firstname, lastname, age, id)
		},
	}
	cmd.Flags().StringVar(&firstname, "firstname", "John", "First name for example 1")
	cmd.Flags().StringVar(&lastname, "lastname", "Doe", "Last name for example 1")
	cmd.Flags().IntVar(&age, "age", 20, "Age for example 1")
	cmd.Flags().Int64Var(&id, "id", 1, "User id for example 2")

	return cmd
}

func runExamples(ctx context.Context, w io.Writer, svc users.Service, firstname, lastname string, age int, id int64) error {
	fmt.Fprint(w, "EXAMPLE 1: ")
	_ = report(w, users.CreateUser(firstname, lastname, age), printUser)

	fmt.Fprint(w, "EXAMPLE 2: ")
	if res := svc.Seed(ctx); res.IsError() {
		return report(w, res, nil)
	}
	_ = report(w, svc.Get(ctx, id), printUser)

	return nil
}

// report writes the outcome of res to w and returns the result's error so
// the process exits non-zero on the error branch
func report[T any](w io.Writer, res result.Result[T], onSuccess func(io.Writer, T)) error {
	res.Match(
		func(v T) {
			if onSuccess != nil {
				onSuccess(w, v)
			}
		},
		func(e errs.Err) {
			fmt.Fprintf(w, "error => %s - %s\n", e.Code(), e.Description())
			logger.ErrorWithErr(e).Msg("Operation failed")
		},
	)

	return res.Err()
}

func printUser(w io.Writer, u users.User) {
	fmt.Fprintf(w, "success => %s %s (%d)\n", u.FirstName, u.LastName, u.Age)
}
