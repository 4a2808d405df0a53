package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockBench/internal/backtest"
	"StockBench/internal/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sc := bufio.NewScanner(os.Stdin)
	req, ok := promptRequest(sc, os.Stdout, cfg.Output.Dir)
	if !ok {
		return
	}

	fmt.Printf("\n%s\nRUNNING BACKTEST...\n%s\n\n", rule(60), rule(60))

	if err := backtest.Run(ctx, cfg, req, os.Stdout); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	fmt.Printf("\n%s\nSUCCESS!\n%s\n\n", rule(60), rule(60))
	fmt.Printf("Your results are saved in: %s\n", req.OutputDir)
	fmt.Println("  - CSV file with metrics")
	fmt.Println("  - PNG chart showing performance")
	fmt.Println()
	fmt.Println("Thank you for using Stock Backtester!")
}
