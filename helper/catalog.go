package helper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"cinema_admin/backend"
	"cinema_admin/schedule"

	"github.com/redis/go-redis/v9"
)

const (
	movieKeyPrefix = "catalog:movie:"
	roomKeyPrefix  = "catalog:room:"
)

// Catalog cache phim và phòng lấy từ backend. Redis nil thì gọi thẳng backend.
type Catalog struct {
	Redis   *redis.Client
	Backend backend.API
	TTL     time.Duration
	// ServiceToken dùng cho các job làm mới chạy nền
	ServiceToken string
}

func NewCatalog(rdb *redis.Client, api backend.API, ttl time.Duration, serviceToken string) *Catalog {
	return &Catalog{Redis: rdb, Backend: api, TTL: ttl, ServiceToken: serviceToken}
}

func (c *Catalog) get(ctx context.Context, key string, out any) bool {
	if c.Redis == nil {
		return false
	}
	data, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Lỗi đọc cache %s: %v", key, err)
		}
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *Catalog) set(ctx context.Context, key string, v any) {
	if c.Redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, key, data, c.TTL).Err(); err != nil {
		log.Printf("Lỗi ghi cache %s: %v", key, err)
	}
}

func (c *Catalog) Movie(ctx context.Context, token string, id uint) (schedule.Movie, error) {
	key := movieKeyPrefix + strconv.FormatUint(uint64(id), 10)
	var movie schedule.Movie
	if c.get(ctx, key, &movie) {
		return movie, nil
	}
	movie, err := c.Backend.GetMovie(ctx, token, id)
	if err != nil {
		return schedule.Movie{}, err
	}
	c.set(ctx, key, movie)
	return movie, nil
}

// Rooms giữ nguyên thứ tự ids, bỏ id trùng
func (c *Catalog) Rooms(ctx context.Context, token string, ids []uint) ([]schedule.Room, error) {
	rooms := make([]schedule.Room, 0, len(ids))
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		key := roomKeyPrefix + strconv.FormatUint(uint64(id), 10)
		var room schedule.Room
		if !c.get(ctx, key, &room) {
			r, err := c.Backend.GetRoom(ctx, token, id)
			if err != nil {
				return nil, fmt.Errorf("room %d: %w", id, err)
			}
			room = backend.RoomFromModel(r)
			c.set(ctx, key, room)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// RefreshMovies nạp lại toàn bộ danh sách phim vào cache
func (c *Catalog) RefreshMovies(ctx context.Context) (int, error) {
	if c.Redis == nil {
		return 0, nil
	}
	movies, err := c.Backend.ListMovies(ctx, c.ServiceToken)
	if err != nil {
		return 0, err
	}
	pipe := c.Redis.Pipeline()
	for _, m := range movies {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		pipe.Set(ctx, movieKeyPrefix+strconv.FormatUint(uint64(m.ID), 10), data, c.TTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return len(movies), nil
}

// RefreshRooms làm mới các phòng đang có trong cache
func (c *Catalog) RefreshRooms(ctx context.Context) (int, error) {
	if c.Redis == nil {
		return 0, nil
	}
	refreshed := 0
	iter := c.Redis.Scan(ctx, 0, roomKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.ParseUint(strings.TrimPrefix(key, roomKeyPrefix), 10, 64)
		if err != nil {
			continue
		}
		r, err := c.Backend.GetRoom(ctx, c.ServiceToken, uint(id))
		if errors.Is(err, backend.ErrNotFound) {
			c.Redis.Del(ctx, key)
			continue
		}
		if err != nil {
			log.Printf("Lỗi làm mới phòng %d: %v", id, err)
			continue
		}
		c.set(ctx, key, backend.RoomFromModel(r))
		refreshed++
	}
	return refreshed, iter.Err()
}
