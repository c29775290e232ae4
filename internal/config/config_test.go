package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt", AccessExpiration: "1h"},
		Attendance: AttendanceConfig{
			Timezone:          DefaultTimezone,
			CutoffDay:         26,
			FullDayHours:      5,
			HalfLeaveMinHours: 2,
		},
		Auth: AuthConfig{MaxAttempts: 5, BlockWindow: 5 * time.Minute},
		App:  AppConfig{LogLevel: "info"},
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := map[string]func(c *Config){
		"missing password": func(c *Config) { c.Database.Password = "" },
		"missing secret":   func(c *Config) { c.JWT.Secret = "" },
		"bad expiration":   func(c *Config) { c.JWT.AccessExpiration = "soon" },
		"cutoff too large": func(c *Config) { c.Attendance.CutoffDay = 31 },
		"zero full day":    func(c *Config) { c.Attendance.FullDayHours = 0 },
		"unknown timezone": func(c *Config) { c.Attendance.Timezone = "Mars/Olympus_Mons" },
		"no attempts":      func(c *Config) { c.Auth.MaxAttempts = 0 },
		"unknown level":    func(c *Config) { c.App.LogLevel = "verbose" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_Location(t *testing.T) {
	c := validConfig()
	loc, err := c.Location()
	require.NoError(t, err)

	_, offset := time.Date(2026, time.October, 16, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 6*3600+30*60, offset)

	c.Attendance.Timezone = ""
	_, err = c.Location()
	assert.NoError(t, err)
}

func TestGetEnvSlice(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "https://a.example, https://b.example,,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvSlice("TEST_ORIGINS", nil))
	assert.Equal(t, []string{"*"}, getEnvSlice("TEST_ORIGINS_UNSET", []string{"*"}))
}
