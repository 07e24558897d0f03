package settings

type Config struct {
	Logger Logger `yaml:"logger"`
	Shell  Shell  `yaml:"shell"`
	Server Server `yaml:"server"`
}

// Server is the configuration for the HTTP driver
type Server struct {
	Mode string `yaml:"mode"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// ShutdownTimeout is in seconds
	ShutdownTimeout int `yaml:"shutdown_timeout"`
}

// Shell is the configuration for the interactive menu
type Shell struct {
	Banner string `yaml:"banner"`
	Prompt string `yaml:"prompt"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups"`
	MaxAge      int    `yaml:"max_age"`
	MaxSize     int    `yaml:"max_size"`
	Compress    bool   `yaml:"compress"`
}
