package config

const (
	defaultDataDir     = "~/.local/share/discograph"
	defaultLogDir      = "~/.local/share/discograph/logs"
	defaultBind        = "127.0.0.1:8139"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultFilterMatch = FilterMatchSubstring
)

// Filter match modes accepted by catalog.filter_match.
const (
	FilterMatchSubstring = "substring"
	FilterMatchExact     = "exact"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			Bind:    defaultBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Catalog: Catalog{
			FilterMatch: defaultFilterMatch,
		},
	}
}
