package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"intent-coordinator/config"
	"intent-coordinator/internal/app"
	"intent-coordinator/internal/intent"
	"intent-coordinator/pkg/log"
)

const callerID = "intentctl"

type buildFunc func(ctx context.Context) (*app.App, error)

type runner struct {
	stdout io.Writer
	stderr io.Writer
	build  buildFunc

	network string
	app     *app.App
}

func newRunner(stdout, stderr io.Writer, build buildFunc) *runner {
	return &runner{stdout: stdout, stderr: stderr, build: build}
}

// buildApp loads the same configuration the API server uses. Logs go to
// stderr so stdout stays machine-readable.
func buildApp(ctx context.Context) (*app.App, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     "production",
		Encoding: "console",
	})
	return app.New(ctx, cfg, logger)
}

func (r *runner) run(args []string) int {
	root := r.newRootCommand()
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	if r.app != nil {
		_ = r.app.Close()
	}
	if err != nil {
		fmt.Fprintln(r.stderr, "error:", err)
		return 1
	}
	return 0
}

func (r *runner) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Parse free-text swap intents and inspect token catalogs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.build(cmd.Context())
			if err != nil {
				return err
			}
			r.app = a
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&r.network, "network", "n", "devnet", "network whose token catalog to use")

	cmd.AddCommand(r.newParseCommand())
	cmd.AddCommand(r.newTokensCommand())
	return cmd
}

func (r *runner) newParseCommand() *cobra.Command {
	var text, idemKey string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse one free-text intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := r.app.IntentUC.ParseFreeText(cmd.Context(), intent.ParseFreeTextInput{
				Network:        r.network,
				Text:           &text,
				IdempotencyKey: idemKey,
				CallerID:       callerID,
			})
			if err != nil {
				p := intent.PublicError(intent.KindOf(err))
				_ = r.writeJSON(r.stderr, p)
				return fmt.Errorf("%s: %w", p.Code, err)
			}
			return r.writeJSON(r.stdout, out.Response)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "free-text request, e.g. \"swap 10 SUI to USDC\"")
	cmd.Flags().StringVar(&idemKey, "idempotency-key", "", "optional idempotency key")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func (r *runner) newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Print the token catalog of a network",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := r.app.Registry.GetTokens(cmd.Context(), r.network)
			if err != nil {
				return err
			}
			return r.writeJSON(r.stdout, tokens)
		},
	}
}

func (r *runner) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
