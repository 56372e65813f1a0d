package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/app"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|status]",
		Short:     "Apply or list embedded database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			return opts.withEnv(cmd.Context(), func(e *env) error {
				out := cmd.OutOrStdout()
				if action == "status" {
					statuses, err := postgres.MigrationStatuses(cmd.Context(), e.pool)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Fprintf(out, "%-8s %d %s\n", state, s.Version, s.Path)
					}
					return nil
				}

				applied, err := postgres.Migrate(cmd.Context(), e.pool)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(out, "no pending migrations")
					return nil
				}
				versions := make([]string, len(applied))
				for i, v := range applied {
					versions[i] = fmt.Sprint(v)
				}
				fmt.Fprintf(out, "applied %d migration(s): %s\n", len(applied), strings.Join(versions, ", "))
				return nil
			})
		},
	}
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Mark overdue reservations as expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd.Context(), func(_ *env, svc *app.Services) error {
				n, err := svc.Reservations.SweepExpired(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired %d reservation(s)\n", n)
				return nil
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print library statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd.Context(), func(_ *env, svc *app.Services) error {
				stats, err := svc.Librarian.Statistics(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), toStatsOutput(*stats))
			})
		},
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the librarian assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			return opts.withServices(cmd.Context(), func(_ *env, svc *app.Services) error {
				resp, err := svc.Librarian.Ask(cmd.Context(), question)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), toAnswerOutput(resp))
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
