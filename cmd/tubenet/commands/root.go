package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tubenet/ingest"
	"github.com/katalvlaran/tubenet/network"
	"github.com/katalvlaran/tubenet/render"
)

// Configuration keys shared by flags, the config file and TUBENET_* variables.
const (
	keyData      = "data"
	keyFormat    = "format"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// app holds per-invocation state: one viper instance and what it resolved to.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
	printer *render.Printer
}

// Execute runs the root command against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the full command tree with fresh configuration state.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "tubenet",
		Short: "Journey planning and line-closure analysis for transit networks",
		Long: `tubenet loads a timetable CSV (Line, Station1, Station2, Time) and answers:

  route     fastest journey between two stations
  stops     journey with the fewest stops
  backbone  minimum spanning backbone and the connections it can close
  impact    how much slower journeys get on the backbone alone`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.tubenet.yaml)")
	pf.StringP(keyData, "d", "", "timetable CSV file")
	pf.StringP(keyFormat, "o", string(render.FormatText), "output format: text, json or yaml")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	pf.String(keyLogFormat, "text", "log format: text or json")

	root.AddCommand(
		a.routeCmd(),
		a.stopsCmd(),
		a.backboneCmd(),
		a.impactCmd(),
		a.statsCmd(),
		a.generateCmd(),
		a.benchCmd(),
	)

	return root
}

// init resolves configuration in flag > env > file > default order and
// prepares the logger and printer.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, ".tubenet.yaml"))
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("TUBENET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := a.v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit one must load.
		if a.cfgFile != "" {
			return fmt.Errorf("config: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger

	format, err := render.ParseFormat(a.v.GetString(keyFormat))
	if err != nil {
		return err
	}
	a.printer = render.New(cmd.OutOrStdout(), format)

	return nil
}

// newLogger builds the slog logger for the CLI; logs go to w, never stdout.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log-format: unknown %q", format)
	}
}

// loadNetwork reads the configured CSV and builds the network.
func (a *app) loadNetwork() (*network.Network, error) {
	file := a.v.GetString(keyData)
	if file == "" {
		return nil, fmt.Errorf("no timetable: pass --%s or set TUBENET_DATA", keyData)
	}
	records, st, err := ingest.LoadFile(file)
	if err != nil {
		return nil, err
	}
	a.logger.Info("timetable loaded",
		"file", file, "rows", st.Rows, "accepted", st.Accepted,
		"skipped", st.Skipped, "stations", len(st.Stations),
	)

	return network.FromRecords(records, st.Stations, network.WithLogger(a.logger))
}
