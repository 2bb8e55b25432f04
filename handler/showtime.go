package handler

import (
	"errors"
	"log"

	"cinema_admin/auth"
	"cinema_admin/backend"
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/model"
	"cinema_admin/schedule"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

var errShowtimeConflict = errors.New("showtime conflicts with existing schedule")

var dialogMessages = map[error]struct {
	message string
	key     string
}{
	schedule.ErrNoMovie:      {"Vui lòng chọn phim", "movieId"},
	schedule.ErrNoRooms:      {"Vui lòng chọn ít nhất một phòng", "roomIds"},
	schedule.ErrEmptyPreview: {"Không có suất chiếu nào để lưu", "preview"},
	schedule.ErrSlotOverlap:  {"Các khung giờ bị chồng lấn", "timeSlots"},
	schedule.ErrWrongStep:    {"Thao tác không hợp lệ ở bước hiện tại", "step"},
}

func previewResponse(d *schedule.Dialog) model.BatchPreviewResponse {
	return model.BatchPreviewResponse{
		Step:     d.Step,
		Movie:    d.Spec.Movie,
		Count:    len(d.Preview),
		Preview:  d.Preview,
		Overlaps: d.Overlaps,
		Alert:    d.Alert,
	}
}

func (h *Handler) dialogError(c *fiber.Ctx, d *schedule.Dialog, err error) error {
	for target, m := range dialogMessages {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":   "error",
				"message":  m.message,
				"error":    err.Error(),
				"keyError": m.key,
				"data":     previewResponse(d),
			})
		}
	}
	return h.fail(c, err)
}

// prepareDialog gom phim, phòng, template vào dialog ở bước schedule
func (h *Handler) prepareDialog(c *fiber.Ctx, session *auth.Session) (*schedule.Dialog, error) {
	input, err := utils.Locals[model.BatchScheduleInput](c, "batchScheduleInput")
	if err != nil {
		return nil, &requestError{status: fiber.StatusInternalServerError, message: constants.ERROR_PARSE_DATA_TO_LOCALS, err: err}
	}

	if input.TemplateId != nil {
		db, err := h.db()
		if err != nil {
			return nil, err
		}
		var tpl model.ScheduleTemplate
		if err := db.First(&tpl, *input.TemplateId).Error; err != nil {
			return nil, err
		}
		helper.ApplyTemplateToInput(&input, &tpl)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, badRequest("Vui lòng chọn khoảng ngày chiếu", "startDate", nil)
	}

	ctx := c.UserContext()
	var movie schedule.Movie
	if input.MovieId != 0 {
		movie, err = h.Movies.Movie(ctx, session.AccessToken, input.MovieId)
		if err != nil {
			return nil, err
		}
		if movie.ID == 0 {
			movie.ID = input.MovieId
		}
	}
	rooms := []schedule.Room{}
	if len(input.RoomIds) > 0 {
		rooms, err = h.Rooms.Rooms(ctx, session.AccessToken, input.RoomIds)
		if err != nil {
			return nil, err
		}
	}

	spec := helper.BuildSpec(input, movie, rooms, h.Options.Location, h.Options.DefaultBasePrice)
	return schedule.NewDialog(spec, h.Options.BlockOnOverlap), nil
}

func (h *Handler) PreviewBatch(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	dialog, err := h.prepareDialog(c, session)
	if err != nil {
		return h.fail(c, err)
	}
	if err := dialog.GoToPreview(); err != nil {
		return h.dialogError(c, dialog, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, previewResponse(dialog))
}

func (h *Handler) SaveBatch(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	dialog, err := h.prepareDialog(c, session)
	if err != nil {
		return h.fail(c, err)
	}
	if err := dialog.GoToPreview(); err != nil {
		return h.dialogError(c, dialog, err)
	}
	candidates, err := dialog.BeginSubmit()
	if err != nil {
		return h.dialogError(c, dialog, err)
	}

	ctx := c.UserContext()
	results, err := h.Backend.CheckAvailabilities(ctx, session.AccessToken, backend.AvailabilityItems(candidates))
	if err != nil {
		dialog.FinishSubmit(err)
		return utils.ErrorResponseWithData(c, backendStatus(err), backend.Message(err), err, previewResponse(dialog))
	}
	if conflicts := backend.Unavailable(results); len(conflicts) > 0 {
		dialog.FinishSubmit(errShowtimeConflict)
		return utils.ErrorResponseWithData(c, fiber.StatusConflict, "Có suất chiếu bị trùng lịch", errShowtimeConflict, fiber.Map{
			"dialog":    previewResponse(dialog),
			"conflicts": conflicts,
		})
	}

	if err := h.Backend.CreateBatch(ctx, session.AccessToken, backend.BatchFromCandidates(candidates)); err != nil {
		dialog.FinishSubmit(err)
		return utils.ErrorResponseWithData(c, backendStatus(err), backend.Message(err), err, previewResponse(dialog))
	}
	dialog.FinishSubmit(nil)

	if h.Notifier != nil {
		username, movie := session.Username, dialog.Spec.Movie
		go func() {
			if err := h.Notifier.BatchCreated(username, movie, candidates); err != nil {
				log.Printf("Lỗi gửi email lịch chiếu: %v", err)
			}
		}()
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"step":    dialog.Step,
		"created": len(candidates),
	})
}

func (h *Handler) CheckOverlaps(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	input, err := utils.Locals[model.OverlapCheckInput](c, "overlapCheckInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	duration := input.DurationMinutes
	if input.MovieId != 0 {
		movie, err := h.Movies.Movie(c.UserContext(), session.AccessToken, input.MovieId)
		if err != nil {
			return h.fail(c, err)
		}
		duration = movie.DurationMinutes
	}

	overlaps := schedule.DetectOverlaps(input.TimeSlots, duration)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"durationMinutes": duration,
		"overlaps":        overlaps,
		"blocking":        h.Options.BlockOnOverlap && len(overlaps) > 0,
	})
}

func (h *Handler) CheckAvailability(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	input, err := utils.Locals[model.CheckAvailabilityInput](c, "checkAvailabilityInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	result, err := h.Backend.CheckAvailability(c.UserContext(), session.AccessToken, backend.AvailabilityRequest{
		MovieId:    input.MovieId,
		RoomId:     input.RoomId,
		StartTime:  input.StartTime,
		ShowtimeId: input.ShowtimeId,
	})
	if err != nil {
		return h.fail(c, err)
	}
	if result.Conflicts == nil {
		result.Conflicts = []backend.Conflict{}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (h *Handler) ListMovies(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	movies, err := h.Backend.ListMovies(c.UserContext(), session.AccessToken)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}
