package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

// DefaultTimezone is the zone attendance dates are classified in.
const DefaultTimezone = "Asia/Yangon"

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Auth       AuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// AttendanceConfig holds the classification thresholds.
type AttendanceConfig struct {
	Timezone          string
	CutoffDay         int
	FullDayHours      float64
	HalfLeaveMinHours float64
}

// AuthConfig holds the login lockout policy.
type AuthConfig struct {
	MaxAttempts int
	BlockWindow time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "agb_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"*"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// Attendance configuration
	cutoff, err := strconv.Atoi(getEnv("ATTENDANCE_CUTOFF_DAY", "26"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_CUTOFF_DAY: %w", err)
	}
	fullDay, err := strconv.ParseFloat(getEnv("ATTENDANCE_FULL_DAY_HOURS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_FULL_DAY_HOURS: %w", err)
	}
	halfLeave, err := strconv.ParseFloat(getEnv("ATTENDANCE_HALF_LEAVE_MIN_HOURS", "2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HALF_LEAVE_MIN_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Timezone:          getEnv("ATTENDANCE_TIMEZONE", DefaultTimezone),
		CutoffDay:         cutoff,
		FullDayHours:      fullDay,
		HalfLeaveMinHours: halfLeave,
	}

	// Auth configuration
	maxAttempts, err := strconv.Atoi(getEnv("AUTH_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_MAX_ATTEMPTS: %w", err)
	}
	blockWindow, err := time.ParseDuration(getEnv("AUTH_BLOCK_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_BLOCK_WINDOW: %w", err)
	}

	config.Auth = AuthConfig{
		MaxAttempts: maxAttempts,
		BlockWindow: blockWindow,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Attendance.CutoffDay < 1 || c.Attendance.CutoffDay > 28 {
		return fmt.Errorf("ATTENDANCE_CUTOFF_DAY must be between 1 and 28")
	}
	if c.Attendance.FullDayHours <= 0 || c.Attendance.HalfLeaveMinHours < 0 {
		return fmt.Errorf("attendance hour thresholds must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Auth.MaxAttempts < 1 {
		return fmt.Errorf("AUTH_MAX_ATTEMPTS must be at least 1")
	}
	if !validator.IsInSlice(strings.ToLower(c.App.LogLevel), logLevels) {
		return fmt.Errorf("LOG_LEVEL must be one of %s", strings.Join(logLevels, ", "))
	}
	return nil
}

// Location resolves the attendance timezone. The default zone falls back to a fixed
// +06:30 offset when the host has no tz database.
func (c *Config) Location() (*time.Location, error) {
	name := c.Attendance.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == DefaultTimezone {
		return time.FixedZone(DefaultTimezone, 6*3600+30*60), nil
	}
	return nil, fmt.Errorf("invalid ATTENDANCE_TIMEZONE %q: %w", name, err)
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
