package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process needs; store handles and secrets
// are threaded through constructors from here instead of living in
// package globals.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
	CORS  CORSConfig
	Log   LogConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	// URL is optional; an empty value disables the export cache.
	URL string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BUDGIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "budgify-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "budgify")
	v.SetDefault("redis.url", "")
	v.SetDefault("jwt.secret", "your-secret-key-change-this")
	v.SetDefault("jwt.expiration", "168h")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("log.level", "info")

	origins := []string{}
	for _, origin := range strings.Split(v.GetString("cors.origins"), ",") {
		origins = append(origins, strings.TrimSpace(origin))
	}

	return &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("mongo.uri"),
			Database: v.GetString("mongo.database"),
		},
		Redis: RedisConfig{
			URL: v.GetString("redis.url"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetDuration("jwt.expiration"),
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}, nil
}
