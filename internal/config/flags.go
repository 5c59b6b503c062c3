package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a api base URL (e.g. https://hack-or-snooze-v3.herokuapp.com)
//	-d local database path (SQLite file or ":memory:")
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-refresh-interval feed cache refresh interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	return parseFlagsFrom(os.Args[1:])
}

func parseFlagsFrom(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("snooze-client", flag.ContinueOnError)

	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	fs.StringVar(&baseURL, "a", "", "API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Feed refresh interval (e.g., 5m)")

	// ContinueOnError keeps unknown flags from killing the TUI before the
	// logger is up; the zero config simply falls through to other sources.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
