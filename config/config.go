package config

type AppConfig struct {
	StorageConfig *StorageConfig
	LogConfig     *LogConfig
}

func New() *AppConfig {
	return &AppConfig{
		StorageConfig: NewStorageConfig(),
		LogConfig:     NewLogConfig(),
	}
}

type LogConfig struct {
	Level string
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}
