package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trigcalc/internal/analysis"
	"github.com/san-kum/trigcalc/internal/calc"
	"github.com/san-kum/trigcalc/internal/config"
	"github.com/san-kum/trigcalc/internal/export"
	"github.com/san-kum/trigcalc/internal/gui"
	"github.com/san-kum/trigcalc/internal/logx"
	"github.com/san-kum/trigcalc/internal/lut"
	"github.com/san-kum/trigcalc/internal/plot"
	"github.com/san-kum/trigcalc/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	verbose    bool
	from       int
	to         int
	preset     string
	plotWidth  int
	plotHeight int
	full       bool
	iterations int
)

// app bundles what every command needs: one table for the whole process.
type app struct {
	cfg   *config.Config
	table *lut.Table
	log   *slog.Logger
}

var env app

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(numericArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trigcalc",
		Short:         "sin, cos and tan from a degree lookup table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the desktop window when no command given
			gui.Run(newSession(), env.cfg.Window, env.log)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(newSession(), env.cfg.Plot.Width, env.cfg.Plot.Height)
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval [angle]",
		Short: "evaluate one angle in degrees",
		Args:  cobra.ExactArgs(1),
		RunE:  evalAngle,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "list lookup table entries (at most 51)",
		RunE:  listTable,
	}
	addRangeFlags(tableCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [angle]",
		Short: "plot the sine wave with an angle highlighted",
		Args:  cobra.ExactArgs(1),
		RunE:  plotAngle,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width (default from config)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height (default from config)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export table entries to CSV on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := exportEntries(cmd)
			if err != nil {
				return err
			}
			return export.CSV(cmd.OutOrStdout(), entries)
		},
	}
	addRangeFlags(exportCSVCmd)
	exportCSVCmd.Flags().BoolVar(&full, "all", false, "export all 360 entries")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export table entries to JSON on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := exportEntries(cmd)
			if err != nil {
				return err
			}
			return export.JSON(cmd.OutOrStdout(), entries)
		},
	}
	addRangeFlags(exportJSONCmd)
	exportJSONCmd.Flags().BoolVar(&full, "all", false, "export all 360 entries")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare table lookup with math.Sin/math.Cos",
		RunE:  benchLookup,
	}
	benchCmd.Flags().IntVar(&iterations, "n", 10_000_000, "evaluations per method")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "power spectrum of the sin table",
		RunE:  spectrum,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list table range presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFROM\tTO")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\n", name, p.Start, p.End)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, evalCmd, tableCmd, plotCmd, exportCSVCmd, exportJSONCmd, benchCmd, spectrumCmd, presetsCmd)
	return rootCmd
}

// numericArgs moves negative numbers such as "-30" behind a "--" so cobra
// reads them as angles instead of shorthand flags. A number that is the
// value of a preceding flag ("--from -5") stays where it is.
func numericArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		cmd = root
	}

	var keep, moved []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			if len(moved) == 0 {
				return args
			}
			out := append(keep, "--")
			out = append(out, moved...)
			return append(out, args[i+1:]...)
		}
		if isNegativeNumber(a) && (i == 0 || !takesValue(cmd, args[i-1])) {
			moved = append(moved, a)
			continue
		}
		keep = append(keep, a)
	}
	if len(moved) == 0 {
		return args
	}
	return append(append(keep, "--"), moved...)
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' || s[1] == '-' {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether tok is a flag that consumes the next argument.
func takesValue(cmd *cobra.Command, tok string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if name == "" || strings.Contains(name, "=") {
			return false
		}
		f = cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
	case len(tok) == 2 && tok[0] == '-':
		f = cmd.Flags().ShorthandLookup(tok[1:])
		if f == nil {
			f = cmd.InheritedFlags().ShorthandLookup(tok[1:])
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

func setup() error {
	env.log = logx.Setup(os.Stderr, verbose)

	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return err
	}
	if configFile != "" {
		env.log.Debug("config loaded", "path", configFile)
	}
	env.cfg = cfg

	start := time.Now()
	env.table = lut.Build()
	env.log.Debug("lookup table built", "entries", lut.Size, "elapsed", time.Since(start))
	return nil
}

func newSession() *calc.Session {
	return calc.New(env.table, env.cfg, env.log)
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&from, "from", config.DefaultTableStart, "first degree")
	cmd.Flags().IntVar(&to, "to", config.DefaultTableEnd, "last degree")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named range preset")
}

// selectedRange resolves --preset, config and --from/--to, flags winning.
func selectedRange(cmd *cobra.Command) (lut.Range, error) {
	r := lut.Range{Start: env.cfg.Table.Start, End: env.cfg.Table.End}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return r, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		r = lut.Range{Start: p.Start, End: p.End}
	}
	if cmd.Flags().Changed("from") {
		r.Start = from
	}
	if cmd.Flags().Changed("to") {
		r.End = to
	}
	return r.Normalize(), nil
}

func exportEntries(cmd *cobra.Command) ([]lut.Entry, error) {
	if full {
		return export.Full(env.table), nil
	}
	r, err := selectedRange(cmd)
	if err != nil {
		return nil, err
	}
	return env.table.Entries(r), nil
}

func evalAngle(cmd *cobra.Command, args []string) error {
	s := newSession()
	s.SetInput(args[0])
	if err := s.Submit(); err != nil {
		return err
	}
	for _, line := range s.Lines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func listTable(cmd *cobra.Command, args []string) error {
	r, err := selectedRange(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "DEG\tSIN\tCOS\tTAN\t")
	for _, e := range env.table.Entries(r) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", e.Degree,
			lut.FormatValue(e.Sin), lut.FormatValue(e.Cos), lut.FormatValue(e.Tan))
	}
	return w.Flush()
}

func plotAngle(cmd *cobra.Command, args []string) error {
	angle, err := lut.ParseAngle(args[0])
	if err != nil {
		return err
	}
	width, height := env.cfg.Plot.Width, env.cfg.Plot.Height
	if plotWidth > 0 {
		width = plotWidth
	}
	if plotHeight > 0 {
		height = plotHeight
	}
	fmt.Fprintln(cmd.OutOrStdout(), plot.Wave(env.table, angle, width, height))
	return nil
}

func benchLookup(cmd *cobra.Command, args []string) error {
	if iterations <= 0 {
		return fmt.Errorf("n must be positive, got %d", iterations)
	}

	var sink float64
	start := time.Now()
	for i := 0; i < iterations; i++ {
		r := env.table.Evaluate(float64(i % 720))
		sink += r.Sin + r.Cos
	}
	lookup := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		rad := math.Round(float64(i%720)) * lut.DegToRad
		sink += math.Sin(rad) + math.Cos(rad)
	}
	direct := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "benchmarking %d evaluations\n\n", iterations)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tTIME\tNS/OP\tEVALS/SEC")
	for _, row := range []struct {
		name string
		d    time.Duration
	}{{"lookup", lookup}, {"math", direct}} {
		fmt.Fprintf(w, "%s\t%v\t%.2f\t%.0f\n", row.name, row.d,
			float64(row.d.Nanoseconds())/float64(iterations),
			float64(iterations)/row.d.Seconds())
	}
	env.log.Debug("bench checksum", "sum", strconv.FormatFloat(sink, 'g', 6, 64))
	return w.Flush()
}

func spectrum(cmd *cobra.Command, args []string) error {
	ps := analysis.PowerSpectrum(env.table.SinValues())

	graph := asciigraph.Plot(ps[:32],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (sin table, bins 0..31)"),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	bin, peak := analysis.Dominant(ps)
	fmt.Fprintf(out, "dominant bin: %d (magnitude %.3f)\n", bin, peak)
	fmt.Fprintf(out, "purity: %.6f\n", analysis.Purity(ps))
	return nil
}
