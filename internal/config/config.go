package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string
	Server  ServerConfig
	Metrics MetricsConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Address        string
	RequestTimeout time.Duration
}

type MetricsConfig struct {
	Port string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type RedisConfig struct {
	// Addr empty disables the listing cache.
	Addr string
	TTL  time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// Load reads config.yaml from the working directory, with PITCHHUB_* env
// variables overriding any key (e.g. PITCHHUB_JWT_SECRET, PITCHHUB_DB_HOST).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("pitchhub")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults also register keys so AutomaticEnv can override them even
	// when the config file omits them.
	viper.SetDefault("env", "local")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.requesttimeout", 10*time.Second)
	viper.SetDefault("metrics.port", "9090")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.user", "pitchhub")
	viper.SetDefault("db.password", "")
	viper.SetDefault("db.name", "pitchhub")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.ttl", 30*time.Second)
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.ttl", 7*24*time.Hour)

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional when everything comes from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
