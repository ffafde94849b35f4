// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tomz197/bitmappers/internal/raster"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers. A set but malformed value is an error.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// GetEnvColor is GetEnv for colors written as "#rrggbb" or "rrggbb".
func GetEnvColor(key string, fallback raster.Color) (raster.Color, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	c, err := ParseColor(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}

// ParseColor parses a hex color written as "#rrggbb" or "rrggbb".
func ParseColor(s string) (raster.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q: want six hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return raster.Color(v), nil
}
