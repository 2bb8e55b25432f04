package database

import (
	"context"
	"log"
	"time"

	"cinema_admin/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis trả về nil khi chưa cấu hình REDIS_ADDR
func ConnectRedis() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR trống, phiên đăng nhập lưu trong bộ nhớ")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       config.ConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		panic("failed to connect redis: " + err.Error())
	}
	log.Println("Connection Opened to Redis")
	return client
}
