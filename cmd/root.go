package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"playparse/batch"
	"playparse/config"
	"playparse/play"
	"playparse/report"
	"playparse/store"
)

var (
	cfgFile      string
	verbose      bool
	workers      int
	storePath    string
	reportUrl    string
	reportSeries string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "playparse",
	Short: "Parse football play-by-play descriptions",
	Long: `playparse turns free-text play-by-play descriptions into typed segments
(run, pass, kick, penalty, fumble, recovery, ...) with the players, teams
and yardlines they mention.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every failed play")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "parser workers (default: number of CPUs)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "save parse runs to this SQLite database")
	rootCmd.PersistentFlags().StringVar(&reportUrl, "report-url", "", "prometheus url to push parse counters to")
	rootCmd.PersistentFlags().StringVar(&reportSeries, "report-series", "nflplay_parse", "series selector for pushed counters")
}

// loadConfig reads the config file, if any, then applies flags that were set
// explicitly.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("workers") && workers > 0 {
		cfg.Workers = workers
	}
	if flags.Changed("store") {
		cfg.Store.Path = storePath
	}
	if flags.Changed("report-url") {
		cfg.Report.Url = reportUrl
	}
	if flags.Changed("report-series") || cfg.Report.Series == "" {
		cfg.Report.Series = reportSeries
	}
	return nil
}

// readPlays reads one play per line.
func readPlays(r io.Reader) ([]string, error) {
	var plays []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		plays = append(plays, scanner.Text())
	}
	return plays, scanner.Err()
}

func readPlaysFrom(file string) ([]string, error) {
	if file == "" || file == "-" {
		return readPlays(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPlays(f)
}

// parseAll runs a batch and hands the result to the configured store and
// report endpoint.
func parseAll(ctx context.Context, plays []string) ([]*play.Description, batch.Stats, error) {
	descs, stats := batch.Parse(ctx, plays, cfg.Workers)
	if cfg.Verbose {
		for i, desc := range descs {
			if desc.IsError {
				log.Printf("%d: unable to process %q: %v", i+1, plays[i], desc.Err())
			}
		}
	}
	log.Println(stats)

	if cfg.Store.Path != "" {
		s, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, stats, err
		}
		defer s.Close()
		id, err := s.SaveRun(ctx, plays, descs)
		if err != nil {
			return nil, stats, fmt.Errorf("saving run: %w", err)
		}
		log.Printf("saved run %v", id)
	}

	if cfg.Report.Url != "" {
		timeout, _ := cfg.ReportTimeout()
		pusher, err := report.NewPusher(cfg.Report.Url, timeout)
		if err != nil {
			return nil, stats, err
		}
		if err := pusher.Push(ctx, cfg.Report.Series, stats); err != nil {
			return nil, stats, fmt.Errorf("pushing stats: %w", err)
		}
	}
	return descs, stats, nil
}
