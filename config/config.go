package config

import "time"

type LnConfig struct {
	LogLevel     string            `mapstructure:"logLevel"`
	LogFormat    string            `mapstructure:"logFormat"`
	ProfilerAddr string            `mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig `mapstructure:"prometheus"`
	Bitcoind     *BitcoindConfig   `mapstructure:"bitcoind"`
	Lightning    *LightningConfig  `mapstructure:"lightning"`
	ChainSync    *ChainSyncConfig  `mapstructure:"chainSync"`
	Peer         *PeerConfig       `mapstructure:"peer"`
	Dispatcher   *DispatcherConfig `mapstructure:"dispatcher"`
	Spawner      *SpawnerConfig    `mapstructure:"spawner"`
}

type PrometheusConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Endpoint != "" && p.Addr != ""
}

type BitcoindConfig struct {
	// RPCURL has the form user:password@host:port
	RPCURL         string        `mapstructure:"rpcURL"`
	RPCTimeout     time.Duration `mapstructure:"rpcTimeout"`
	AllowMainnet   bool          `mapstructure:"allowMainnet"`
	StartupRetries uint64        `mapstructure:"startupRetries"`
}

type LightningConfig struct {
	Port    int    `mapstructure:"port"`
	DataDir string `mapstructure:"dataDir"`
	// Engine selects a linked channel engine by name, empty selects the only one
	Engine string `mapstructure:"engine"`
}

type ChainSyncConfig struct {
	PollInterval   time.Duration `mapstructure:"pollInterval"`
	HeaderCacheTTL time.Duration `mapstructure:"headerCacheTTL"`
}

type PeerConfig struct {
	ConnectTimeout time.Duration `mapstructure:"connectTimeout"`
	WriteQueueSize int           `mapstructure:"writeQueueSize"`
	ReadBufferSize int           `mapstructure:"readBufferSize"`
	// Bootstrap peers in the form pubkey@host:port
	Bootstrap []string `mapstructure:"bootstrap"`
}

type DispatcherConfig struct {
	NotifyCapacity int `mapstructure:"notifyCapacity"`
}

type SpawnerConfig struct {
	Mode      string `mapstructure:"mode"`
	Workers   int    `mapstructure:"workers"`
	QueueSize int    `mapstructure:"queueSize"`
}
