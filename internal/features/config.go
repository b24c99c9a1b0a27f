package features

type Config struct {
	// Parallel runs the capability calls of one computation concurrently.
	Parallel bool
}

type Logger interface {
	Log(level, stage, message, detail string)
}

// DefaultConfig is the configuration NewExtractor callers start from.
func DefaultConfig() Config {
	return Config{Parallel: true}
}
