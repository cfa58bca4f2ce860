package main

import (
	"io"
	"log/slog"

	"github.com/born-ml/ndarray/internal/config"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

var (
	cfgFile   string
	activeCfg = config.DefaultConfig()
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "N-dimensional array calculator",
		Long:          "Slice, reshape and multiply arrays given as nested JSON lists.\nPass - as an array argument to read it from stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(cmd.ErrOrStderr(), loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newMatMulCmd())
	cmd.AddCommand(newSliceCmd())
	cmd.AddCommand(newReshapeCmd())
	cmd.AddCommand(newDiagCmd())
	cmd.AddCommand(newSaveCmd())
	cmd.AddCommand(newLoadCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(w io.Writer, levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "ndarray "+version+"\n")
			return err
		},
	}
}
