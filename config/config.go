package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Notifier   NotifierConfig   `mapstructure:"notifier"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	AdminEmail   string        `mapstructure:"admin_email"`
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type NotifierConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Broker      string `mapstructure:"broker"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
}

// CalculatorConfig is the named rate table behind the bill-based
// estimator. Defaults match the public savings calculator; deployments
// can retune without a code change.
type CalculatorConfig struct {
	GridCostPerKWh  float64 `mapstructure:"grid_cost_per_kwh"`
	SystemCostPerKW float64 `mapstructure:"system_cost_per_kw"`
	OffsetFraction  float64 `mapstructure:"offset_fraction"`
	MinSunHours     float64 `mapstructure:"min_sun_hours"`
	MaxSunHours     float64 `mapstructure:"max_sun_hours"`
}

func Load(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/lightsup")
	}

	// Set defaults
	viper.SetDefault("server.port", 8046)
	viper.SetDefault("database.path", "./lightsup.db")
	viper.SetDefault("auth.admin_email", "")
	viper.SetDefault("auth.password_hash", "")
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.token_ttl", "12h")
	viper.SetDefault("notifier.enabled", false)
	viper.SetDefault("notifier.broker", "tcp://localhost:1883")
	viper.SetDefault("notifier.topic_prefix", "lightsup")
	viper.SetDefault("notifier.client_id", "lightsup-server")
	viper.SetDefault("calculator.grid_cost_per_kwh", 70)
	viper.SetDefault("calculator.system_cost_per_kw", 800000)
	viper.SetDefault("calculator.offset_fraction", 0.9)
	viper.SetDefault("calculator.min_sun_hours", 3)
	viper.SetDefault("calculator.max_sun_hours", 8)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
