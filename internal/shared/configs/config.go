package configs

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Logs   LogsConfig   `mapstructure:"logs" validate:"required"`
	Flags  FlagsConfig  `mapstructure:"flags"`
	Shell  ShellConfig  `mapstructure:"shell"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds application logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// LogsConfig locates the access logs that get scanned.
type LogsConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// FlagsConfig locates the operator-curated flag list. The file is optional;
// an empty path disables flag matching entirely.
type FlagsConfig struct {
	File string `mapstructure:"file"`
}

// ShellConfig holds the legacy shell-script export path.
type ShellConfig struct {
	ScriptPath     string `mapstructure:"script_path"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"omitempty,min=1"`
}

// ExportConfig holds aggregation export configuration.
type ExportConfig struct {
	DefaultWindow string `mapstructure:"default_window" validate:"required"`
}
