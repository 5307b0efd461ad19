package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/wire"

	"github.com/bitcoin-sv/lnbridge/config"
	"github.com/bitcoin-sv/lnbridge/internal/chain_sync"
	lnLogger "github.com/bitcoin-sv/lnbridge/internal/logger"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
)

// logListener prints every tip change the syncer replays.
type logListener struct {
	logger *slog.Logger
}

func (l *logListener) BlockConnected(block *wire.MsgBlock, height uint32) {
	l.logger.Info("Block connected",
		slog.String("hash", block.BlockHash().String()),
		slog.Uint64("height", uint64(height)),
		slog.Int("txs", len(block.Transactions)),
	)
}

func (l *logListener) BlockDisconnected(header *wire.BlockHeader) {
	l.logger.Info("Block disconnected", slog.String("hash", header.BlockHash().String()))
}

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run chainwatch: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir := flag.String("config", "", "path to configuration file")
	oldHash := flag.String("from", "", "print the fork steps from this block hash to -to and exit")
	newHash := flag.String("to", "", "target block hash for -from, defaults to the current best block")
	flag.Parse()

	lnConfig, err := config.Load(*configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	logger, err := lnLogger.NewLogger(lnConfig.LogLevel, lnConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	client, err := rpc_client.New(lnConfig.Bitcoind.RPCURL,
		rpc_client.WithLogger(logger),
		rpc_client.WithTimeout(lnConfig.Bitcoind.RPCTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create chain rpc client: %v", err)
	}

	syncer := chain_sync.New(client, &logListener{logger: logger}, logger,
		chain_sync.WithPollInterval(lnConfig.ChainSync.PollInterval),
		chain_sync.WithHeaderCacheTTL(lnConfig.ChainSync.HeaderCacheTTL),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if *oldHash != "" {
		return printFork(ctx, client, syncer, *oldHash, *newHash)
	}

	syncer.Start()
	<-ctx.Done()

	logger.Info("Received shutdown signal")
	syncer.Shutdown()

	return nil
}

func printFork(ctx context.Context, client *rpc_client.Client, syncer *chain_sync.Syncer, oldHash string, newHash string) error {
	if newHash == "" {
		best, err := client.GetBestBlockHash(ctx)
		if err != nil {
			return fmt.Errorf("failed to get best block hash: %v", err)
		}
		newHash = best
	}

	steps, err := syncer.FindFork(ctx, oldHash, newHash)
	if err != nil {
		return fmt.Errorf("failed to find fork: %v", err)
	}

	for _, step := range steps {
		fmt.Printf("%-10s %7d %s\n", step.Kind, step.Block.Height, step.Block.Hash)
	}

	return nil
}
