package cmd

import (
	"log/slog"
	"os"

	"github.com/cljtools/cljsel/internal/env"
	"github.com/cljtools/cljsel/internal/lsp"
	"github.com/spf13/cobra"
)

func CmdServe() *cobra.Command {
	var logfile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a selection server over stdio using the Language Server Protocol",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := &env.Env{
				HOME:    env.CljselHome(),
				LOGFILE: logfile,
			}
			if env.LOGFILE == "" {
				env.LOGFILE = os.Getenv("CLJSEL_LOGFILE")
			}
			// stdout carries the protocol stream; logs go to stderr
			// unless a file is requested.
			if env.LOGFILE != "" {
				f, err := os.OpenFile(env.LOGFILE, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
			} else {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
			}

			slog.Info("Initializing Server...")
			err := lsp.RunServer(cmd.Context(), env)
			if err != nil {
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&logfile, "logfile", "", "", "append server logs to this file")

	return cmd
}
