package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"StockBench/internal/backtest"
	"StockBench/internal/config"
	"StockBench/internal/model"
)

var (
	flagTickers   []string
	flagStart     int
	flagEnd       int
	flagIndex     string
	flagOutputDir string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Backtest stock performance against market indices",
	Long: `Backtest downloads daily closing prices for one or more tickers, compares
them over their shared trading days and reports total return, annualized
return, volatility, maximum drawdown and Sharpe ratio. The report is printed
to the terminal and saved as a CSV file plus a normalized performance chart.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBacktest,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&flagTickers, "tickers", "t", nil, "stock ticker symbol(s) to analyze, e.g. AAPL,MSFT,GOOGL (required)")
	rootCmd.Flags().IntVarP(&flagStart, "start", "s", 0, "start year, e.g. 2020 (required)")
	rootCmd.Flags().IntVarP(&flagEnd, "end", "e", 0, "end year, e.g. 2024 (required)")
	rootCmd.Flags().StringVarP(&flagIndex, "index", "i", "", "index to compare against: "+strings.Join(model.IndexNames(), ", "))
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", `directory for output files (default "output")`)
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file (default $CONFIG_PATH or config.yaml)")

	rootCmd.MarkFlagRequired("tickers")
	rootCmd.MarkFlagRequired("start")
	rootCmd.MarkFlagRequired("end")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

func runBacktest(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	req := backtest.Request{
		Tickers:   flagTickers,
		StartYear: flagStart,
		EndYear:   flagEnd,
		Index:     flagIndex,
		OutputDir: flagOutputDir,
	}
	return backtest.Run(cmd.Context(), cfg, req, os.Stdout)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}
