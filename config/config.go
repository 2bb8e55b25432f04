package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config func to get env value
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Print("Không tìm thấy file .env, dùng biến môi trường hệ thống")
		}
	})
	return os.Getenv(key)
}

func ConfigDefault(key, def string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return def
}

func ConfigInt(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Giá trị %s không hợp lệ: %q, dùng mặc định %d", key, v, def)
		return def
	}
	return n
}

func ConfigBool(key string, def bool) bool {
	v := Config(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func ConfigDuration(key string, def time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Giá trị %s không hợp lệ: %q, dùng mặc định %s", key, v, def)
		return def
	}
	return d
}

// Location dùng cho lịch chiếu, mặc định ICT (UTC+7).
func Location() *time.Location {
	name := Config("TIMEZONE")
	if name == "" {
		return time.FixedZone("ICT", 7*3600)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("TIMEZONE %q không hợp lệ: %v", name, err)
		return time.FixedZone("ICT", 7*3600)
	}
	return loc
}
