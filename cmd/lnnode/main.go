package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitcoin-sv/lnbridge/config"
	"github.com/bitcoin-sv/lnbridge/internal/engine"
	lnLogger "github.com/bitcoin-sv/lnbridge/internal/logger"
	"github.com/bitcoin-sv/lnbridge/internal/node"
	"github.com/bitcoin-sv/lnbridge/internal/rpc_client"
	"github.com/bitcoin-sv/lnbridge/internal/version"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run lnnode: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, dumpConfigFile := parseFlags()

	lnConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := lnLogger.NewLogger(lnConfig.LogLevel, lnConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	logger.Info("Starting lnnode", slog.String("version", version.Version), slog.String("commit", version.Commit))

	go func() {
		if lnConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", lnConfig.ProfilerAddr))

			err := http.ListenAndServe(lnConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if lnConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", lnConfig.Prometheus.Endpoint))
			http.Handle(lnConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(lnConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	client, err := rpc_client.New(lnConfig.Bitcoind.RPCURL,
		rpc_client.WithLogger(logger),
		rpc_client.WithTimeout(lnConfig.Bitcoind.RPCTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create chain rpc client: %v", err)
	}

	eng, err := engine.Open(lnConfig.Lightning.Engine, lnConfig.Lightning.DataDir, logger)
	if err != nil {
		if errors.Is(err, engine.ErrNoEngine) {
			return fmt.Errorf("%w: build lnnode with an engine package imported", err)
		}
		return fmt.Errorf("failed to open channel engine: %v", err)
	}

	n, err := node.New(lnConfig, client, eng, logger)
	if err != nil {
		return fmt.Errorf("failed to create node: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	err = n.Start(ctx)
	if err != nil {
		n.Shutdown()
		return fmt.Errorf("failed to start node: %v", err)
	}

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	n.Shutdown()

	return nil
}

func parseFlags() (string, string) {
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: lnnode [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config (default='')")
		fmt.Println("")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump config to specified file and exit")
		fmt.Println("")
		os.Exit(0)
	}

	return *configDir, *dumpConfigFile
}
