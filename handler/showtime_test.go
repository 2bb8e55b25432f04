package handler_test

import (
	"errors"
	"testing"

	"cinema_admin/backend"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchBody(slots ...string) fiber.Map {
	timeSlots := []fiber.Map{}
	for _, s := range slots {
		timeSlots = append(timeSlots, fiber.Map{"startTime": s})
	}
	return fiber.Map{
		"movieId":      1,
		"roomIds":      []uint{2, 3},
		"startDate":    "2026-10-19",
		"endDate":      "2026-10-25",
		"scheduleType": "daily",
		"timeSlots":    timeSlots,
	}
}

func TestPreviewBatch_DailyWeek(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, "POST", "/api/v1/showtime/batch/preview", batchBody("09:00", "13:00"))

	require.Equal(t, fiber.StatusOK, status, body)
	d := data(t, body)
	assert.Equal(t, "preview", d["step"])
	assert.EqualValues(t, 28, d["count"])
	assert.Empty(t, d["overlaps"])
	first := d["preview"].([]any)[0].(map[string]any)
	assert.Equal(t, "2026-10-19", first["date"])
	assert.EqualValues(t, 2, first["roomId"])
	assert.EqualValues(t, 50000, first["price"])
	assert.Equal(t, 0, e.fake.Calls["CreateBatch"])
}

func TestPreviewBatch_WeeklyWithSelectedDays(t *testing.T) {
	e := newEnv(t)
	body := batchBody("10:00")
	body["scheduleType"] = "weekly"
	body["selectedDays"] = []int{6, 0}
	body["roomIds"] = []uint{2}

	status, resp := e.do(t, "POST", "/api/v1/showtime/batch/preview", body)

	require.Equal(t, fiber.StatusOK, status, resp)
	d := data(t, resp)
	assert.EqualValues(t, 2, d["count"])
}

func TestPreviewBatch_MissingMovieStaysOnSchedule(t *testing.T) {
	e := newEnv(t)
	body := batchBody("09:00")
	delete(body, "movieId")

	status, resp := e.do(t, "POST", "/api/v1/showtime/batch/preview", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "movieId", resp["keyError"])
	assert.Equal(t, "schedule", data(t, resp)["step"])
}

func TestPreviewBatch_MissingRooms(t *testing.T) {
	e := newEnv(t)
	body := batchBody("09:00")
	body["roomIds"] = []uint{}

	status, resp := e.do(t, "POST", "/api/v1/showtime/batch/preview", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "roomIds", resp["keyError"])
}

func TestPreviewBatch_InvalidSlot(t *testing.T) {
	e := newEnv(t)

	status, _ := e.do(t, "POST", "/api/v1/showtime/batch/preview", batchBody("25:00"))

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPreviewBatch_EndBeforeStart(t *testing.T) {
	e := newEnv(t)
	body := batchBody("09:00")
	body["endDate"] = "2026-10-18"

	status, resp := e.do(t, "POST", "/api/v1/showtime/batch/preview", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "endDate", resp["keyError"])
}

func TestCheckOverlaps_UsesMovieDuration(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, "POST", "/api/v1/showtime/batch/overlaps", fiber.Map{
		"movieId":   1,
		"timeSlots": []fiber.Map{{"startTime": "09:00"}, {"startTime": "10:30"}, {"startTime": "13:00"}},
	})

	require.Equal(t, fiber.StatusOK, status, body)
	d := data(t, body)
	assert.EqualValues(t, 120, d["durationMinutes"])
	assert.Equal(t, []any{float64(0), float64(1)}, d["overlaps"])
	assert.Equal(t, false, d["blocking"])
}

func TestSaveBatch_PostsEveryCandidate(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00", "13:00"))

	require.Equal(t, fiber.StatusCreated, status, body)
	d := data(t, body)
	assert.Equal(t, "closed", d["step"])
	assert.EqualValues(t, 28, d["created"])

	require.Len(t, e.fake.Batches, 1)
	sent := e.fake.Batches[0]
	require.Len(t, sent, 28)
	assert.Equal(t, backend.BatchShowtime{MovieId: 1, RoomId: 2, StartTime: "19-10-2026 09:00", Price: 50000}, sent[0])
	assert.Equal(t, "25-10-2026 13:00", sent[27].StartTime)
	assert.Equal(t, 1, e.fake.Calls["CheckAvailabilities"])
	assert.Contains(t, e.fake.Tokens, "access-admin")
}

func TestSaveBatch_OverlapWarnsButSaves(t *testing.T) {
	e := newEnv(t)

	status, _ := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00", "10:00"))

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Len(t, e.fake.Batches, 1)
}

func TestSaveBatch_OverlapBlocksWhenConfigured(t *testing.T) {
	e := newEnv(t)
	e.h.Options.BlockOnOverlap = true

	status, body := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00", "10:00"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "timeSlots", body["keyError"])
	assert.Equal(t, "schedule", data(t, body)["step"])
	assert.Empty(t, e.fake.Batches)
}

func TestSaveBatch_ConflictWithExistingShowtime(t *testing.T) {
	e := newEnv(t)
	e.fake.MarkBusy(3, "21-10-2026 13:00", backend.Conflict{MovieName: "Lật Mặt 7", StartTime: "21-10-2026 12:00", EndTime: "21-10-2026 14:10"})

	status, body := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00", "13:00"))

	assert.Equal(t, fiber.StatusConflict, status)
	d := data(t, body)
	conflicts := d["conflicts"].([]any)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "21-10-2026 13:00", conflicts[0].(map[string]any)["start_time"])
	assert.Equal(t, "preview", d["dialog"].(map[string]any)["step"])
	assert.Empty(t, e.fake.Batches)
}

func TestSaveBatch_BackendFailureKeepsPreview(t *testing.T) {
	e := newEnv(t)
	e.fake.BatchErr = &backend.APIError{Status: 500}

	status, body := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00"))

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, backend.Message(e.fake.BatchErr), body["message"])
	d := data(t, body)
	assert.Equal(t, "preview", d["step"])
	assert.EqualValues(t, 14, d["count"])
}

func TestSaveBatch_NetworkError(t *testing.T) {
	e := newEnv(t)
	e.fake.BatchErr = errors.Join(backend.ErrBackend, errors.New("connection refused"))

	status, _ := e.do(t, "POST", "/api/v1/showtime/batch", batchBody("09:00"))

	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestCheckAvailability(t *testing.T) {
	e := newEnv(t)
	e.fake.MarkBusy(2, "19-10-2026 09:00", backend.Conflict{MovieName: "Mai"})

	status, body := e.do(t, "POST", "/api/v1/showtime/check-availability", fiber.Map{
		"movieId":   1,
		"roomId":    2,
		"startTime": "19-10-2026 09:00",
	})

	require.Equal(t, fiber.StatusOK, status, body)
	d := data(t, body)
	assert.Equal(t, false, d["is_available"])
	assert.Len(t, d["conflicts"], 1)

	status, _ = e.do(t, "POST", "/api/v1/showtime/check-availability", fiber.Map{
		"movieId":   1,
		"roomId":    2,
		"startTime": "2026-10-19 09:00",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestBatchWithTemplateNeedsDatabase(t *testing.T) {
	e := newEnv(t)
	body := batchBody()
	body["templateId"] = 1

	status, _ := e.do(t, "POST", "/api/v1/showtime/batch/preview", body)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestScheduleTemplateRoutesNeedDatabase(t *testing.T) {
	e := newEnv(t)

	status, _ := e.do(t, "GET", "/api/v1/schedule/", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	status, _ = e.do(t, "POST", "/api/v1/schedule/", fiber.Map{
		"name":         "Cuối tuần",
		"scheduleType": "weekly",
		"selectedDays": []int{6, 0},
		"timeSlots":    []fiber.Map{{"startTime": "18:00"}},
	})
	assert.Equal(t, fiber.StatusServiceUnavailable, status)

	status, _ = e.do(t, "POST", "/api/v1/schedule/", fiber.Map{"name": "x"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
