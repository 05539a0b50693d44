package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
	"github.com/san-kum/physcalc/internal/tui"
	"github.com/san-kum/physcalc/internal/viz"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

var (
	configFile string
	verbose    bool
	jsonOut    bool
	plainOut   bool
	preset     string

	// Set up in PersistentPreRunE.
	cfg    *config.Config
	logger *slog.Logger
	reg    *topic.Registry
)

// main registers one subcommand per topic plus the utility commands and
// starts the interactive calculator when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:               "physcalc",
		Short:             "closed-form physics calculator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(reg, viz.GetTheme(cfg.Theme), cfg.Precision)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&plainOut, "plain", false, "print results as a plain table")

	// Flag metadata only; solving uses the registry built from the config.
	catalog := topic.NewRegistry(formula.DefaultConstants(), nil)
	for _, t := range catalog.Topics() {
		rootCmd.AddCommand(newTopicCmd(t))
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list topics and their parameters",
		RunE:  listTopics,
	}

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "print the constants table",
		RunE:  printConstants,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [topic]",
		Short: "list available presets for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for topic: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s  %s\n", p, formatInputs(config.GetPreset(args[0], p)))
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(reg, viz.GetTheme(cfg.Theme), cfg.Precision)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("physcalc v%s\n", Version)
			fmt.Printf("  Git Commit: %s\n", GitCommit)
			fmt.Printf("  Go Version: %s\n", runtime.Version())
		},
	}

	rootCmd.AddCommand(listCmd, constantsCmd, presetsCmd, newPlotCmd(catalog), newConfigCmd(), tuiCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	reg = topic.NewRegistry(cfg.Constants, logger)
	logger.Debug("configured", "config", configFile, "theme", cfg.Theme, "precision", cfg.Precision)
	return nil
}

// newTopicCmd builds the subcommand for t with one float flag per parameter.
// Optional parameters only count when set on the command line or by the
// preset.
func newTopicCmd(t *topic.Topic) *cobra.Command {
	values := make(map[string]*float64, len(t.Params))

	cmd := &cobra.Command{
		Use:   t.Name,
		Short: strings.ToLower(t.Title) + ": " + t.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := collectInputs(cmd, t, values)
			if err != nil {
				return err
			}
			res, err := reg.Solve(t.Name, in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), t.Name, in, res)
		},
	}

	for _, p := range t.Params {
		usage := p.Display()
		if p.Optional {
			usage += ", leave unset to solve for it"
		}
		values[p.Name] = cmd.Flags().Float64(p.Name, p.Default, usage)
	}
	cmd.Flags().StringVar(&preset, "preset", "", "use preset inputs (see presets command)")
	return cmd
}

// collectInputs merges the preset with flags; explicitly set flags win.
func collectInputs(cmd *cobra.Command, t *topic.Topic, values map[string]*float64) (topic.Inputs, error) {
	in := topic.Inputs{}
	if preset != "" {
		in = config.GetPreset(t.Name, preset)
		if in == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(t.Name))
		}
	}

	for _, p := range t.Params {
		changed := cmd.Flags().Changed(p.Name)
		_, fromPreset := in[p.Name]
		switch {
		case changed:
			in[p.Name] = *values[p.Name]
		case fromPreset:
		case !p.Optional:
			in[p.Name] = *values[p.Name]
		}
	}
	return in, nil
}

func printResult(w io.Writer, name string, in topic.Inputs, res formula.Result) error {
	switch {
	case jsonOut:
		return viz.WriteJSON(w, name, in, res)
	case plainOut:
		return viz.WriteTable(w, res, cfg.Precision)
	default:
		r := viz.NewRenderer(viz.GetTheme(cfg.Theme), cfg.Precision)
		_, err := fmt.Fprintln(w, r.RenderResult(res))
		return err
	}
}

func listTopics(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tTITLE\tPARAMETERS")
	for _, t := range reg.Topics() {
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.Name
			if p.Optional {
				params[i] += "?"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Title, strings.Join(params, ", "))
	}
	return w.Flush()
}

func printConstants(cmd *cobra.Command, args []string) error {
	table := formula.Result{Quantities: cfg.Constants.Named()}
	if jsonOut {
		return viz.WriteJSON(cmd.OutOrStdout(), "constants", nil, table)
	}
	return viz.WriteTable(cmd.OutOrStdout(), table, cfg.Precision)
}

func formatInputs(in topic.Inputs) string {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + topic.FormatValue(in[name])
	}
	return strings.Join(parts, " ")
}
