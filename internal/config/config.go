package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	// RootPathEnv names the environment variable holding the dataset root.
	RootPathEnv = "CAMELS_ROOT_PATH"

	configName    = "config"
	configType    = "ini"
	configSection = "CAMELS_DE"
)

// ErrRootPathNotSet is returned when neither the environment variable nor
// the config file provides a dataset root.
var ErrRootPathNotSet = errors.New("CAMELS_ROOT_PATH is not set in environment variables or config.ini")

// ResolveRootPath returns the root directory of the CAMELS-DE dataset.
//
// Resolution order: a .env file in the working directory (if present) is
// loaded into the environment first, then the CAMELS_ROOT_PATH environment
// variable is consulted, then the CAMELS_ROOT_PATH key in the [CAMELS_DE]
// section of a config.ini in the working directory. The result is not
// cached; callers re-resolve on every call.
func ResolveRootPath() (string, error) {
	if err := godotenv.Load(); err == nil {
		log.Trace().Msg("loaded .env file")
	}

	if path := os.Getenv(RootPathEnv); path != "" {
		log.Debug().Str("root", path).Msg("dataset root from environment")
		return path, nil
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", ErrRootPathNotSet
		}
		return "", err
	}

	if path := v.GetString(configSection + "." + RootPathEnv); path != "" {
		log.Debug().Str("root", path).Str("file", v.ConfigFileUsed()).Msg("dataset root from config file")
		return path, nil
	}

	return "", ErrRootPathNotSet
}
