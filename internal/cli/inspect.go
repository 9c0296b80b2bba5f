package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/newsdata"
	"github.com/hupe1980/newsdata/codec"
	"github.com/hupe1980/newsdata/internal/config"
	"github.com/hupe1980/newsdata/table"
)

var (
	inspectThreshold   float64
	inspectConcurrency int
	inspectLimit       int
	inspectJSON        bool
	inspectCodec       string
	inspectFormat      string
	inspectSheet       string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <source>...",
	Short: "Load sources and show labeled samples",
	Long: `Loads one or more sources into a single dataset and prints its size,
class balance and the first samples. Sources are resolved against the
configured store.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Float64VarP(&inspectThreshold, "threshold", "t", 1, "minimum up_votes for the popular label")
	inspectCmd.Flags().IntVar(&inspectConcurrency, "concurrency", 4, "sources loaded at once")
	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 5, "samples to print (-1 for all)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print samples as JSON lines")
	inspectCmd.Flags().StringVar(&inspectCodec, "codec", codec.Default.Name(), "JSON codec (json or go-json)")
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "", "force the table format (csv, tsv or xlsx)")
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "worksheet to read from xlsx sources")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = inspectThreshold
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = inspectConcurrency
	}

	c, ok := codec.ByName(inspectCodec)
	if !ok {
		return fmt.Errorf("unknown codec %q", inspectCodec)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	opts := []newsdata.Option{
		newsdata.WithLogger(logger),
		newsdata.WithConcurrency(cfg.Concurrency),
		newsdata.WithIOLimit(cfg.IOLimit),
		newsdata.WithMemoryLimit(cfg.MemoryLimit),
		newsdata.WithSheet(inspectSheet),
	}
	if inspectFormat != "" {
		f, ok := table.FormatFromName("." + inspectFormat)
		if !ok {
			return fmt.Errorf("unknown format %q", inspectFormat)
		}
		opts = append(opts, newsdata.WithFormat(f))
	}

	ctx := cmd.Context()
	store, err := cfg.Store.Open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	ds, err := newsdata.LoadAll(ctx, store, args, cfg.Threshold, opts...)
	if err != nil {
		return err
	}

	n := ds.Len()
	if inspectLimit >= 0 && inspectLimit < n {
		n = inspectLimit
	}

	if inspectJSON {
		for i := range n {
			s, err := ds.Get(i)
			if err != nil {
				return err
			}
			if err := codec.WriteLine(cmd.OutOrStdout(), c, s); err != nil {
				return err
			}
		}
		return nil
	}

	return outputInspectSummary(cmd, ds, n)
}

func outputInspectSummary(cmd *cobra.Command, ds *newsdata.Dataset, n int) error {
	out := cmd.OutOrStdout()
	stats := ds.Stats()

	fmt.Fprintf(out, "Samples:     %d\n", stats.Total)
	fmt.Fprintf(out, "Threshold:   %g\n", ds.Threshold())
	fmt.Fprintf(out, "Popular:     %d (%s)\n", stats.Popular, percent(stats.Popular, stats.Total))
	fmt.Fprintf(out, "Not popular: %d (%s)\n", stats.NotPopular, percent(stats.NotPopular, stats.Total))

	if n == 0 {
		return nil
	}

	fmt.Fprintln(out)
	for i := range n {
		s, err := ds.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "[%d] %-11s %s\n", i, s.Label, s.Text)
	}
	return nil
}

func percent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}
