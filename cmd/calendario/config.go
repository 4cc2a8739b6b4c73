package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mfalcone/calendario/internal/logger"
	"github.com/mfalcone/calendario/internal/notify"
	"github.com/mfalcone/calendario/internal/storagebuilder"
)

const envConfigPrefix = "$env:"

type Config struct {
	Logger   logger.Config
	Storage  storagebuilder.Config
	Notifier notify.Config
}

func NewConfig(configFile string) (Config, error) {
	config := Config{}
	viper.SetConfigFile(configFile)

	viper.SetDefault("logger.level", "WARN")
	viper.SetDefault("storage.storageType", "sqlite")
	viper.SetDefault("storage.database.path", "./calendario.db")
	viper.SetDefault("notifier.enabled", true)
	viper.SetDefault("notifier.spec", "@every 1m")

	err := viper.ReadInConfig()
	if err != nil {
		return config, fmt.Errorf("failed to read config %q: %w", configFile, err)
	}
	keys := viper.AllKeys()
	for _, key := range keys {
		env := viper.GetString(key)
		if strings.HasPrefix(env, envConfigPrefix) {
			err := viper.BindEnv(key, env[len(envConfigPrefix):])
			if err != nil {
				return Config{}, fmt.Errorf("failed to prepare config: %w", err)
			}
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	return config, nil
}
