package main

import (
	"os"
	"strconv"
	"strings"
)

// envOr returns the trimmed env value or def when empty.
func envOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// envIntOr returns the parsed int env value or def on empty/parse failure.
func envIntOr(key string, def int) int {
	n, err := strconv.Atoi(envOr(key, ""))
	if err != nil {
		return def
	}
	return n
}

// envFloatOr returns the parsed float env value or def on empty/parse failure.
func envFloatOr(key string, def float64) float64 {
	f, err := strconv.ParseFloat(envOr(key, ""), 64)
	if err != nil {
		return def
	}
	return f
}
