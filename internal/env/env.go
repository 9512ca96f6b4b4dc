package env

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetString retrieves an environment variable or returns fallback
func GetString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		fmt.Println("Invalid", key, "defaulting to", fallback)
		return fallback
	}
	return n
}

// GetDuration accepts Go durations ("10s") or a bare number of seconds.
func GetDuration(key string, fallback time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	fmt.Println("Invalid", key, "defaulting to", fallback)
	return fallback
}
