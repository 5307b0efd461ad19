package config

import "time"

func getDefaultLnConfig() *LnConfig {
	return &LnConfig{
		LogLevel:     "INFO",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		Bitcoind:     getDefaultBitcoindConfig(),
		Lightning:    getDefaultLightningConfig(),
		ChainSync:    getDefaultChainSyncConfig(),
		Peer:         getDefaultPeerConfig(),
		Dispatcher:   getDefaultDispatcherConfig(),
		Spawner:      getDefaultSpawnerConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Endpoint: "/metrics",
		Addr:     "",
	}
}

func getDefaultBitcoindConfig() *BitcoindConfig {
	return &BitcoindConfig{
		RPCURL:         "bitcoin:bitcoin@localhost:18443",
		RPCTimeout:     30 * time.Second,
		AllowMainnet:   false,
		StartupRetries: 10,
	}
}

func getDefaultLightningConfig() *LightningConfig {
	return &LightningConfig{
		Port:    9735,
		DataDir: "./lnbridge-data",
		Engine:  "",
	}
}

func getDefaultChainSyncConfig() *ChainSyncConfig {
	return &ChainSyncConfig{
		PollInterval:   time.Second,
		HeaderCacheTTL: 10 * time.Minute,
	}
}

func getDefaultPeerConfig() *PeerConfig {
	return &PeerConfig{
		ConnectTimeout: 10 * time.Second,
		WriteQueueSize: 3,
		ReadBufferSize: 8192,
		Bootstrap:      []string{},
	}
}

func getDefaultDispatcherConfig() *DispatcherConfig {
	return &DispatcherConfig{
		NotifyCapacity: 2,
	}
}

func getDefaultSpawnerConfig() *SpawnerConfig {
	return &SpawnerConfig{
		Mode:      "goroutine",
		Workers:   0,
		QueueSize: 0,
	}
}
