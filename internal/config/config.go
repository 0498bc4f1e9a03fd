package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTPPort string         // HTTPPort is the port the API server listens on.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration from the YAML file pointed to by CONFIG_PATH,
// with environment variables taking precedence over file values.
// It panics if CONFIG_PATH is set but the file is missing or unreadable.
func MustLoad() *Config {
	viper.SetDefault("env", "local")
	viper.SetDefault("http.port", "8080")
	viper.SetDefault("postgres.port", "5432")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	bindings := map[string]string{
		"env":               "EMPLOYEE_API_ENV",
		"http.port":         "HTTP_PORT",
		"postgres.host":     "DB_HOST",
		"postgres.port":     "DB_PORT",
		"postgres.user":     "DB_USERNAME",
		"postgres.password": "DB_PASSWORD",
		"postgres.db_name":  "DB_NAME",
	}
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			panic("failed to bind env variable: " + err.Error())
		}
	}

	return &Config{
		Env:      viper.GetString("env"),
		HTTPPort: viper.GetString("http.port"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
	}
}
