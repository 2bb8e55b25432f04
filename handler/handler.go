package handler

import (
	"context"
	"errors"
	"time"

	"cinema_admin/auth"
	"cinema_admin/backend"
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/middleware"
	"cinema_admin/schedule"
	"cinema_admin/seatplan"
	"cinema_admin/utils"
	"cinema_admin/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type MovieLookup interface {
	Movie(ctx context.Context, token string, id uint) (schedule.Movie, error)
}

type RoomLookup interface {
	Rooms(ctx context.Context, token string, ids []uint) ([]schedule.Room, error)
}

type Options struct {
	// BlockOnOverlap chặn lưu khi các khung giờ chồng lấn, mặc định chỉ cảnh báo
	BlockOnOverlap bool
	// ExplicitCouple gửi type "couple" cho hàng ghế đôi
	ExplicitCouple   bool
	DefaultBasePrice int64
	Location         *time.Location
}

type Handler struct {
	Backend  backend.API
	Sessions *auth.Manager
	Movies   MovieLookup
	Rooms    RoomLookup
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier *helper.Notifier
	Options  Options
}

func New(api backend.API, sessions *auth.Manager, catalog *helper.Catalog, opts Options) *Handler {
	if opts.Location == nil {
		opts.Location = time.FixedZone("ICT", 7*3600)
	}
	return &Handler{
		Backend:  api,
		Sessions: sessions,
		Movies:   catalog,
		Rooms:    catalog,
		Options:  opts,
	}
}

func (h *Handler) payloadOptions() seatplan.PayloadOptions {
	return seatplan.PayloadOptions{ExplicitCouple: h.Options.ExplicitCouple}
}

// requestError là lỗi đã biết status và thông báo
type requestError struct {
	status  int
	message string
	key     string
	err     error
}

func (e *requestError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.message
}

func (e *requestError) Unwrap() error { return e.err }

func badRequest(message, key string, err error) error {
	return &requestError{status: fiber.StatusBadRequest, message: message, key: key, err: err}
}

func backendStatus(err error) int {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == fiber.StatusUnauthorized {
			return fiber.StatusUnauthorized
		}
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status
		}
	}
	return fiber.StatusBadGateway
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &reqErr):
		if reqErr.key != "" {
			return utils.ErrorResponseHaveKey(c, reqErr.status, reqErr.message, reqErr.err, reqErr.key)
		}
		return utils.ErrorResponse(c, reqErr.status, reqErr.message, reqErr.err)
	case errors.As(err, &fieldErr):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fieldErr.Message, fieldErr, fieldErr.Key)
	case errors.Is(err, backend.ErrBackend), errors.Is(err, backend.ErrNotFound):
		return utils.ErrorResponse(c, backendStatus(err), backend.Message(err), err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

func (h *Handler) session(c *fiber.Ctx) (*auth.Session, error) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return nil, &requestError{status: fiber.StatusUnauthorized, message: constants.SESSION_EXPIRED, err: auth.ErrNotAuthenticated}
	}
	return s, nil
}

func (h *Handler) db() (*gorm.DB, error) {
	if h.DB == nil {
		return nil, &requestError{status: fiber.StatusServiceUnavailable, message: "Chưa cấu hình cơ sở dữ liệu", err: errors.New("database not configured")}
	}
	return h.DB, nil
}
