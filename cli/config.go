package cli

import (
	"errors"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys maps config file keys to the flags they feed.
var configKeys = map[string]string{
	"check_external": "check-external",
	"timeout":        "timeout",
	"concurrency":    "concurrency",
	"base_url":       "base-url",
	"cache_dir":      "cache-dir",
	"cache_ttl":      "cache-ttl",
}

// applyConfigFile layers an optional .tadoru.yaml (or --config file)
// under the flags. Explicitly set flags always win; the file only fills
// in what the command line left at its default.
func applyConfigFile(cmd *cobra.Command) error {
	v := viper.New()
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName(".tadoru")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFlag == "" && errors.As(err, &notFound) {
			return nil
		}
		return failure.New(ConfigFileError,
			failure.Message("Failed to read config file"),
			failure.Context{
				"cause": err.Error(),
			},
		)
	}

	for key, flag := range configKeys {
		if !v.IsSet(key) || cmd.Flags().Changed(flag) {
			continue
		}
		if err := cmd.Flags().Set(flag, v.GetString(key)); err != nil {
			return failure.New(InvalidArguments,
				failure.Message("Invalid config value"),
				failure.Context{
					"key":   key,
					"value": v.GetString(key),
				},
			)
		}
	}
	return nil
}
