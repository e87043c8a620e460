package config

import "samewords/internal/letters"

const (
	defaultConfigPath      = "~/.config/samewords/config.toml"
	projectConfigName      = "samewords.toml"
	defaultSourceURL       = "https://sjp.pl/sl/odmiany/sjp-odm-20250301.zip"
	defaultWordFile        = "odm.txt"
	defaultDownloadTimeout = 300
	defaultLocale          = letters.DefaultLocale
	defaultOutputStyle     = StylePlain
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Output styles.
const (
	StylePlain = "plain"
	StyleTable = "table"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			URL:             defaultSourceURL,
			DataDir:         defaultDataDir(),
			WordFile:        defaultWordFile,
			DownloadTimeout: defaultDownloadTimeout,
			KeepArchive:     true,
		},
		Matching: Matching{
			Locale:    defaultLocale,
			Prefilter: true,
		},
		Output: Output{
			Style:    defaultOutputStyle,
			Progress: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
