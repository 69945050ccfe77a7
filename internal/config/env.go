package config

import (
	"fmt"
	"os"
	"strconv"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port := os.Getenv("APP_PORT")
	if port == "" {
		return ":8080"
	}
	return port
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// MaxCells reads the exhaustive-search bound override. Zero means the
// engine default.
func MaxCells() (int, error) {
	raw, ok := os.LookupEnv("RECTCUT_MAX_CELLS")
	if !ok {
		return 0, nil
	}
	cells, err := strconv.Atoi(raw)
	if err != nil || cells <= 0 {
		return 0, fmt.Errorf("invalid RECTCUT_MAX_CELLS value %q", raw)
	}
	return cells, nil
}
