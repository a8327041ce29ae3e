package config

const (
	defaultDownloadsDir = "~/Downloads"
	defaultLogDir       = "~/.local/share/snapsort/logs"
	defaultLogFormat    = "auto"
	defaultLogLevel     = "info"
	defaultSettleMs     = 500
	defaultSettleChecks = 5
	defaultEventBuffer  = 64
)

func defaultExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".webp"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DownloadsDir: defaultDownloadsDir,
			LogDir:       defaultLogDir,
		},
		Organize: Organize{
			DateBuckets: true,
			Extensions:  defaultExtensions(),
		},
		Watch: Watch{
			SettleMs:     defaultSettleMs,
			SettleChecks: defaultSettleChecks,
			EventBuffer:  defaultEventBuffer,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
