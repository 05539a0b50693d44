package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/topic"
	"github.com/san-kum/physcalc/internal/viz"
	"github.com/spf13/cobra"
)

var (
	vary      string
	from      float64
	to        float64
	points    int
	output    string
	overrides map[string]string
)

func newPlotCmd(catalog *topic.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [topic]",
		Short: "plot one output while one input varies",
		Long: "plot solves the topic once per point, varying one input between\n" +
			"--from and --to, and draws the chosen output.\n\n" +
			"topics: " + strings.Join(catalog.List(), ", "),
		Example: "  physcalc plot projectile --vary angle --from 0 --to 90 --output range --set v0=20",
		Args:    cobra.ExactArgs(1),
		RunE:    plotTopic,
	}
	cmd.Flags().StringVar(&vary, "vary", "", "parameter to vary")
	cmd.Flags().Float64Var(&from, "from", 0, "first value")
	cmd.Flags().Float64Var(&to, "to", 1, "last value")
	cmd.Flags().IntVar(&points, "points", 60, "number of points")
	cmd.Flags().StringVar(&output, "output", "", "output label or its prefix (default: first output)")
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "fixed inputs, name=value")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset inputs for the fixed parameters")
	_ = cmd.MarkFlagRequired("vary")
	return cmd
}

func plotTopic(cmd *cobra.Command, args []string) error {
	t, err := reg.Get(args[0])
	if err != nil {
		return err
	}
	if _, ok := t.Param(vary); !ok {
		return fmt.Errorf("%s has no parameter %q", t.Name, vary)
	}
	if points < 2 {
		return fmt.Errorf("need at least 2 points, got %d", points)
	}

	base, err := baseInputs(t)
	if err != nil {
		return err
	}

	label := ""
	xs := make([]float64, points)
	ys := make([]float64, points)
	for i := range xs {
		x := from + (to-from)*float64(i)/float64(points-1)
		in := base.Clone()
		in[vary] = x

		res, err := reg.Solve(t.Name, in)
		if err != nil {
			return fmt.Errorf("%s = %g: %w", vary, x, err)
		}
		if label == "" {
			if label, err = matchLabel(res.Labels(), output); err != nil {
				return err
			}
		}
		y, ok := res.Value(label)
		if !ok {
			return fmt.Errorf("%s = %g: result has no %q", vary, x, label)
		}
		xs[i], ys[i] = x, y
	}

	logger.Debug("plotted", "topic", t.Name, "vary", vary, "points", points, "output", label)

	graph, err := viz.Plot(xs, ys, label+" vs "+vary)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), graph)
	return err
}

// baseInputs returns the fixed inputs: defaults, then preset, then --set.
func baseInputs(t *topic.Topic) (topic.Inputs, error) {
	in := t.Defaults()
	if preset != "" {
		p := config.GetPreset(t.Name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(t.Name))
		}
		for k, v := range p {
			in[k] = v
		}
	}
	for name, text := range overrides {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("--set %s: %w", name, err)
		}
		in[name] = v
	}
	return in, nil
}

// matchLabel finds want among labels by case-insensitive prefix. An empty
// want selects the first label.
func matchLabel(labels []string, want string) (string, error) {
	if len(labels) == 0 {
		return "", fmt.Errorf("result has no outputs")
	}
	if want == "" {
		return labels[0], nil
	}
	for _, l := range labels {
		if strings.HasPrefix(strings.ToLower(l), strings.ToLower(want)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("no output matching %q (have %s)", want, strings.Join(labels, ", "))
}
