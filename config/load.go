package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "LNBRIDGE"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigUnmarshal           = errors.New("failed to unmarshal config")
	ErrConfigInvalid             = errors.New("invalid config")
)

func Load(configFileDirs ...string) (*LnConfig, error) {
	viper.Reset()

	lnConfig := getDefaultLnConfig()

	err := setDefaults(lnConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(lnConfig)
	if err != nil {
		return nil, errors.Join(ErrConfigUnmarshal, err)
	}

	err = validate(lnConfig)
	if err != nil {
		return nil, errors.Join(ErrConfigInvalid, err)
	}

	return lnConfig, nil
}

func validate(c *LnConfig) error {
	if c.Bitcoind == nil || c.Bitcoind.RPCURL == "" {
		return errors.New("bitcoind.rpcURL is required")
	}

	if c.Lightning == nil || c.Lightning.DataDir == "" {
		return errors.New("lightning.dataDir is required")
	}

	if c.Lightning.Port < 0 || c.Lightning.Port > 65535 {
		return fmt.Errorf("lightning.port %d is out of range", c.Lightning.Port)
	}

	if c.Peer == nil || c.Peer.WriteQueueSize <= 0 {
		return errors.New("peer.writeQueueSize must be positive")
	}

	if c.Dispatcher == nil || c.Dispatcher.NotifyCapacity <= 0 {
		return errors.New("dispatcher.notifyCapacity must be positive")
	}

	if c.Spawner != nil {
		switch c.Spawner.Mode {
		case "", "goroutine", "pool", "inline":
		default:
			return fmt.Errorf("spawner.mode %q is not one of goroutine, pool, inline", c.Spawner.Mode)
		}
	}

	return nil
}

// DumpConfig writes the loaded configuration to filename. An existing file is not overwritten.
func DumpConfig(filename string) error {
	err := viper.SafeWriteConfigAs(filename)
	if err != nil {
		return fmt.Errorf("error while dumping config: %w", err)
	}

	return nil
}

func setDefaults(defaultConfig *LnConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	return viper.ReadInConfig()
}
