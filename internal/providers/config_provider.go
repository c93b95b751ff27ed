package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"parkpulse/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "PARKPULSE_LOG_LEVEL")
	viper.BindEnv("sync.interval", "PARKPULSE_SYNC_INTERVAL")
	viper.BindEnv("liveData.baseUrl", "PARKPULSE_LIVEDATA_URL")
	viper.BindEnv("storage.backend", "PARKPULSE_STORAGE_BACKEND")
	viper.BindEnv("storage.bucket", "PARKPULSE_STORAGE_BUCKET")
	viper.BindEnv("cache.enabled", "PARKPULSE_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PARKPULSE_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ParkPulse"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
