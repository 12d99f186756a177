package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	SecretKey string
}

// RecommenderConfig holds the deploy-time overrides for the scoring engine.
// Weights left empty means the built-in reference parameters are used.
type RecommenderConfig struct {
	Intercept       float64
	Weights         []float64
	ContentWeight   float64
	CollabWeight    float64
	CacheTTLSeconds int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	intercept, err := strconv.ParseFloat(getEnv("RECOMMENDER_INTERCEPT", "-0.5"), 64)
	if err != nil {
		return nil, errors.New("invalid recommender intercept")
	}

	weights, err := parseWeights(os.Getenv("RECOMMENDER_WEIGHTS"))
	if err != nil {
		return nil, err
	}

	contentWeight, err := strconv.ParseFloat(getEnv("RECOMMENDER_CONTENT_WEIGHT", "0.6"), 64)
	if err != nil {
		return nil, errors.New("invalid recommender content weight")
	}

	collabWeight, err := strconv.ParseFloat(getEnv("RECOMMENDER_COLLAB_WEIGHT", "0.4"), 64)
	if err != nil {
		return nil, errors.New("invalid recommender collaborative weight")
	}

	cacheTTL, err := strconv.Atoi(getEnv("RECOMMENDER_CACHE_TTL_SECONDS", "60"))
	if err != nil {
		return nil, errors.New("invalid recommender cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Student Tutor Connect API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "student_tutor_connect"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Recommender: RecommenderConfig{
			Intercept:       intercept,
			Weights:         weights,
			ContentWeight:   contentWeight,
			CollabWeight:    collabWeight,
			CacheTTLSeconds: cacheTTL,
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

// parseWeights reads a comma-separated weight list. The length contract is
// enforced by the recommender at construction, not here.
func parseWeights(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid recommender weight %q", p)
		}
		weights = append(weights, w)
	}
	return weights, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
