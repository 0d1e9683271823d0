package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
}

const defaultJWTSecret = "change-me-in-production"

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:    getEnv("APP_ADDR", ":8080"),
		GinMode:    getEnv("GIN_MODE", ""),
		DBDSN:      getEnv("DB_DSN", ""),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getEnv("DB_NAME", "travel_backoffice"),
		JWTSecret:  getEnv("JWT_SECRET", defaultJWTSecret),
	}

	env.CORSOrigins = defaultCORSOrigins
	if raw := getEnv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		env.CORSOrigins = []string{}
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
		if len(env.CORSOrigins) == 0 {
			env.CORSOrigins = defaultCORSOrigins
		}
	}
	if env.JWTSecret == defaultJWTSecret {
		log.Println("warning: JWT_SECRET is not set, using the development default")
	}
	return env
}

// Validate refuses settings that must not reach a release deployment.
func (e Env) Validate() error {
	if strings.EqualFold(e.GinMode, "release") && e.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set when GIN_MODE=release")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	return v
}
