package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"underwrite/adapters/memory"
	"underwrite/adapters/postgres"
	"underwrite/app"
	"underwrite/domain/catalog"
	"underwrite/internal"
	"underwrite/internal/testkit"
	"underwrite/models"
	"underwrite/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "underwrite-cli",
		Short: "Underwriting engine CLI for scripted walks and session maintenance",
	}

	rootCmd.AddCommand(
		newWalkCmd(),
		newListCmd(),
		newRecomputeCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *internal.Logger {
	return internal.NewDefaultLogger()
}

// databaseRepo connects to the session store named by DATABASE_URL
func databaseRepo() (ports.SessionRepository, func(), error) {
	_ = godotenv.Load()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return postgres.NewSessionRepository(db), func() { db.Close() }, nil
}

func printSession(session *models.Session) error {
	out, err := json.MarshalIndent(session.State.State, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newWalkCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "walk [qid=answer-json...]",
		Short: "Run a scripted answer walk through a fresh session",
		Long: `Run a scripted walk through a fresh in-memory session and print the
resulting state. Answers are qid=json pairs applied in order; an optional
intake message is folded in first.

Example: underwrite-cli walk --message "I am 30, a male, and a non smoker, 175cm, and 75kg" 'q4={"alcohol":false}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewSessionService(memory.NewSessionRepository(), newLogger())
			ctx := context.Background()

			session, err := svc.StartSession(ctx)
			if err != nil {
				return err
			}

			if message != "" {
				if session, _, err = svc.ApplyIntake(ctx, session.ID, message); err != nil {
					return err
				}
			}

			for _, arg := range args {
				qid, payload, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid step %q, want qid=answer-json", arg)
				}
				session, err = svc.SubmitAnswer(ctx, session.ID, catalog.ID(qid), []byte(payload))
				if err != nil {
					return fmt.Errorf("step %s: %w", qid, err)
				}
				if session.State.Declined {
					fmt.Fprintf(cmd.OutOrStdout(), "declined after %s: %s\n", qid, session.State.DeclineReason)
					break
				}
			}

			return printSession(session)
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "intake message applied before the scripted answers")
	return cmd
}

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sessions newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := databaseRepo()
			if err != nil {
				return err
			}
			defer closeFn()

			sessions, err := repo.ListSessions(context.Background(), limit)
			if err != nil {
				return err
			}

			for _, s := range sessions {
				status := "OPEN"
				plan := ""
				switch {
				case s.State.Declined:
					status = "DECLINED"
					plan = s.State.DeclineReason
				case s.State.Completed:
					status = "COMPLETED"
					if s.State.CurrentPlan != nil {
						plan = string(*s.State.CurrentPlan)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  v%-3d %-9s %s\n", s.ID, s.Version, status, plan)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d sessions\n", len(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum sessions to list")
	return cmd
}

func newSeedCmd() *cobra.Command {
	config := testkit.DefaultPortfolioConfig()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with a synthetic applicant portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := databaseRepo()
			if err != nil {
				return err
			}
			defer closeFn()

			sessions, err := testkit.NewPortfolioGenerator(config).GenerateSessions()
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, session := range sessions {
				if err := repo.CreateSession(ctx, session); err != nil {
					return fmt.Errorf("seed session %s: %w", session.ID, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d sessions\n", len(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&config.SessionCount, "count", config.SessionCount, "number of sessions to generate")
	cmd.Flags().Int64Var(&config.Seed, "seed", config.Seed, "rng seed for a reproducible portfolio")
	cmd.Flags().Float64Var(&config.SmokerRate, "smoker-rate", config.SmokerRate, "fraction of smokers")
	cmd.Flags().Float64Var(&config.MeanBMI, "mean-bmi", config.MeanBMI, "mean of the BMI distribution")
	return cmd
}

func newRecomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Replay every open session against the current rulebook",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := databaseRepo()
			if err != nil {
				return err
			}
			defer closeFn()

			svc := app.NewSessionService(repo, newLogger())
			count, err := svc.RecomputeAll(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d open sessions\n", count)
			return nil
		},
	}
}
