package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cinema_admin/model"
	"cinema_admin/schedule"

	"github.com/gofiber/fiber/v2"
)

const genericMessage = "Không thể xử lý yêu cầu, vui lòng thử lại"

var (
	ErrBackend  = errors.New("backend request failed")
	ErrNotFound = errors.New("backend resource not found")
)

// APIError mang status và thông báo backend trả về
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrBackend
}

// Message trả về thông báo hiển thị cho người dùng
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericMessage
}

type API interface {
	Login(ctx context.Context, username, password string) (model.TokenData, error)
	RefreshToken(ctx context.Context, refreshToken string) (model.TokenData, error)

	GetMovie(ctx context.Context, token string, id uint) (schedule.Movie, error)
	ListMovies(ctx context.Context, token string) ([]schedule.Movie, error)

	GetRoom(ctx context.Context, token string, id uint) (model.Room, error)
	ListRoomsByCinema(ctx context.Context, token string, cinemaId uint) ([]model.Room, error)
	CreateRoom(ctx context.Context, token string, payload RoomPayload) (model.Room, error)
	UpdateRoom(ctx context.Context, token string, id uint, payload RoomPayload) (model.Room, error)

	CheckAvailability(ctx context.Context, token string, req AvailabilityRequest) (Availability, error)
	CheckAvailabilities(ctx context.Context, token string, items []AvailabilityItem) ([]AvailabilityResult, error)
	CreateBatch(ctx context.Context, token string, showtimes []BatchShowtime) error
}

type Client struct {
	baseURL string
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) agent(method, path string) *fiber.Agent {
	url := c.baseURL + path
	switch method {
	case fiber.MethodPost:
		return fiber.Post(url)
	case fiber.MethodPut:
		return fiber.Put(url)
	case fiber.MethodDelete:
		return fiber.Delete(url)
	default:
		return fiber.Get(url)
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	a := c.agent(method, path).Timeout(timeout)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		a.JSON(body)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrBackend, errors.Join(errs...))
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)
	if code >= fiber.StatusBadRequest {
		return &APIError{Status: code, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	data := []byte(env.Data)
	if len(data) == 0 || string(data) == "null" {
		data = raw
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrBackend, method, path, err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, username, password string) (model.TokenData, error) {
	var tokens model.TokenData
	err := c.do(ctx, fiber.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	}, &tokens)
	return tokens, err
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (model.TokenData, error) {
	var tokens model.TokenData
	err := c.do(ctx, fiber.MethodPost, "/auth/refresh-token", "", fiber.Map{
		"refreshToken": refreshToken,
	}, &tokens)
	return tokens, err
}

func (c *Client) GetMovie(ctx context.Context, token string, id uint) (schedule.Movie, error) {
	var movie schedule.Movie
	err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/movie/%d", id), token, nil, &movie)
	return movie, err
}

func (c *Client) ListMovies(ctx context.Context, token string) ([]schedule.Movie, error) {
	movies := []schedule.Movie{}
	err := c.do(ctx, fiber.MethodGet, "/movie", token, nil, &movies)
	return movies, err
}

func (c *Client) GetRoom(ctx context.Context, token string, id uint) (model.Room, error) {
	var room model.Room
	err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/room/%d", id), token, nil, &room)
	return room, err
}

func (c *Client) ListRoomsByCinema(ctx context.Context, token string, cinemaId uint) ([]model.Room, error) {
	rooms := []model.Room{}
	err := c.do(ctx, fiber.MethodGet, fmt.Sprintf("/cinema/%d/rooms", cinemaId), token, nil, &rooms)
	return rooms, err
}

func (c *Client) CreateRoom(ctx context.Context, token string, payload RoomPayload) (model.Room, error) {
	var room model.Room
	err := c.do(ctx, fiber.MethodPost, "/room", token, payload, &room)
	return room, err
}

func (c *Client) UpdateRoom(ctx context.Context, token string, id uint, payload RoomPayload) (model.Room, error) {
	var room model.Room
	err := c.do(ctx, fiber.MethodPut, fmt.Sprintf("/room/%d", id), token, payload, &room)
	return room, err
}

func (c *Client) CheckAvailability(ctx context.Context, token string, req AvailabilityRequest) (Availability, error) {
	var result Availability
	err := c.do(ctx, fiber.MethodPost, "/showtime/check-availability", token, req, &result)
	return result, err
}

func (c *Client) CheckAvailabilities(ctx context.Context, token string, items []AvailabilityItem) ([]AvailabilityResult, error) {
	results := []AvailabilityResult{}
	err := c.do(ctx, fiber.MethodPost, "/showtime/check-availabilities", token, fiber.Map{
		"showtimes": items,
	}, &results)
	return results, err
}

func (c *Client) CreateBatch(ctx context.Context, token string, showtimes []BatchShowtime) error {
	return c.do(ctx, fiber.MethodPost, "/showtime/batch", token, fiber.Map{
		"showtimes": showtimes,
	}, nil)
}
