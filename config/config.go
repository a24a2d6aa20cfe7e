package config

import (
	"os"
	"strconv"
	"strings"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return getEnv("PORT", "8000")
}

func UploadDir() string {
	return getEnv("UPLOAD_DIR", "uploads")
}

// MaxFileSize is the upload size ceiling in bytes (default 10 MiB).
func MaxFileSize() int64 {
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return 10 * 1024 * 1024
}

func AllowedFileTypes() []string {
	v := getEnv("ALLOWED_FILE_TYPES", "image/jpeg,image/png,application/pdf,text/plain")
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
