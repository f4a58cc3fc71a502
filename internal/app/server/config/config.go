package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath          = ".env"
	defaultSecretKey = "SecRetKey"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendSurreal  = "surreal"
	BackendPostgres = "postgres"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Logger Logger
}

type DB struct {
	Backend     string
	DatabaseURI string
	Migrations  string
	Surreal     Surreal
}

type Surreal struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type Server struct {
	RunAddress string
}

type Auth struct {
	Secret string
	// Token lifetimes: a fresh registration gets a short-lived token,
	// an explicit login a day-long one.
	RegisterTokenTTL time.Duration
	LoginTokenTTL    time.Duration
}

type Logger struct {
	LogLevel string
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("db_backend", BackendSurreal)
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("surrealdb_url", "ws://localhost:8000/rpc")
	viper.SetDefault("surrealdb_namespace", "notekeeper")
	viper.SetDefault("surrealdb_database", "notekeeper")

	secret := viper.GetString("jwt_secret")
	if secret == "" {
		secret = defaultSecretKey
	}

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			Backend:     viper.GetString("db_backend"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
			Surreal: Surreal{
				URL:       viper.GetString("surrealdb_url"),
				Namespace: viper.GetString("surrealdb_namespace"),
				Database:  viper.GetString("surrealdb_database"),
				Username:  viper.GetString("surrealdb_user"),
				Password:  viper.GetString("surrealdb_pass"),
			},
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Auth: Auth{
			Secret:           secret,
			RegisterTokenTTL: time.Hour,
			LoginTokenTTL:    24 * time.Hour,
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}
}
