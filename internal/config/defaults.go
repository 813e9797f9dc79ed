package config

const (
	defaultDataRoot      = "./dataset"
	defaultOutputDir     = "."
	defaultLogDir        = "~/.local/share/antideepfake/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultBuildWorkers  = 4
	defaultBuildLanguage = "en"
	maxBuildWorkers      = 128
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataRoot:  defaultDataRoot,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Build: Build{
			Workers:  defaultBuildWorkers,
			Language: defaultBuildLanguage,
		},
		ProbeCache: ProbeCache{
			Path: defaultProbeCachePath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
