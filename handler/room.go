package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cinema_admin/backend"
	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/seatplan"
	"cinema_admin/utils"
	"cinema_admin/validate"

	"github.com/gofiber/fiber/v2"
)

func roomView(room model.Room) model.RoomView {
	return model.RoomView{Room: room, Layout: seatplan.Restore(seatplan.FromPayload(room.Seats))}
}

func roomChannel(id uint) string {
	return fmt.Sprintf("room:%d", id)
}

// publishRoom báo cho các màn hình đang mở phòng này
func (h *Handler) publishRoom(ctx context.Context, view model.RoomView) {
	if h.Redis == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := h.Redis.Publish(ctx, roomChannel(view.Room.ID), data).Err(); err != nil {
		log.Printf("Lỗi publish phòng %d: %v", view.Room.ID, err)
	}
}

func (h *Handler) PreviewSeatPlan(c *fiber.Ctx) error {
	input, err := utils.Locals[model.SeatGeometryInput](c, "seatPlanInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, input.Plan())
}

func (h *Handler) CreateRoom(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	input, err := utils.Locals[model.CreateRoomInput](c, "inputCreateRoom")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	layout := input.Seat.Plan()
	payload := backend.RoomPayload{
		CinemaId:   input.CinemaId,
		RoomNumber: input.RoomNumber,
		Type:       input.Type,
		Status:     constants.STATUS_ROOM_AVAILABLE,
		FormatIds:  input.FormatIds,
		Capacity:   layout.Capacity,
		Seats:      seatplan.Payload(seatplan.Physical(layout.Seats), h.payloadOptions()),
	}

	room, err := h.Backend.CreateRoom(c.UserContext(), session.AccessToken, payload)
	if err != nil {
		return h.fail(c, err)
	}
	if len(room.Seats) == 0 {
		room.Seats = payload.Seats
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, model.RoomView{Room: room, Layout: layout})
}

func (h *Handler) GetRoomLayout(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	room, err := h.Backend.GetRoom(c.UserContext(), session.AccessToken, uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, roomView(room))
}

// GetRoomEditForm chuyển thẳng từ chế độ xem sang form sửa đã điền sẵn
func (h *Handler) GetRoomEditForm(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	room, err := h.Backend.GetRoom(c.UserContext(), session.AccessToken, uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	view := roomView(room)
	form := view.Edit()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"mode":   form.Mode(),
		"form":   form,
		"layout": view.Layout,
	})
}

func (h *Handler) EditRoom(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	input, err := utils.Locals[model.EditRoomInput](c, "inputEditRoom")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	room, err := h.Backend.GetRoom(c.UserContext(), session.AccessToken, input.RoomId)
	if err != nil {
		return h.fail(c, err)
	}

	payload := backend.RoomPayload{
		RoomNumber: room.RoomNumber,
		Type:       room.Type,
		Status:     room.Status,
		FormatIds:  room.FormatIds,
		Capacity:   room.Capacity,
		Seats:      room.Seats,
	}
	if input.RoomNumber != nil {
		payload.RoomNumber = *input.RoomNumber
	}
	if input.Type != nil {
		payload.Type = *input.Type
	}
	if input.Status != nil {
		payload.Status = *input.Status
	}
	if input.FormatIds != nil {
		payload.FormatIds = *input.FormatIds
	}

	old := seatplan.FromPayload(room.Seats)
	if input.Seat == nil && input.Type != nil && *input.Type != room.Type {
		// đổi loại phòng thì kích thước hiện tại vẫn phải hợp lệ
		rows, cols := seatplan.Dimensions(old)
		if fe := validate.CheckGeometry(payload.Type, model.SeatGeometryInput{RowCount: rows, ColumnCount: cols}); fe != nil {
			return h.fail(c, fe)
		}
	}

	var diff *seatplan.DiffStats
	if input.Seat != nil {
		if fe := validate.CheckGeometry(payload.Type, *input.Seat); fe != nil {
			return h.fail(c, fe)
		}
		layout := input.Seat.Plan()
		merged := seatplan.DiffSeatsForUpdate(old, layout.Seats)
		stats := seatplan.Summarize(old, merged)
		diff = &stats
		payload.Seats = seatplan.Payload(merged, h.payloadOptions())
		payload.Capacity = layout.Capacity
	}

	updated, err := h.Backend.UpdateRoom(c.UserContext(), session.AccessToken, input.RoomId, payload)
	if err != nil {
		return h.fail(c, err)
	}
	if len(updated.Seats) == 0 {
		updated.Seats = payload.Seats
	}

	view := roomView(updated)
	h.publishRoom(c.UserContext(), view)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"room":   view.Room,
		"layout": view.Layout,
		"diff":   diff,
	})
}

// ListCinemaRooms phục vụ ô chọn phòng của dialog lập lịch
func (h *Handler) ListCinemaRooms(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}
	rooms, err := h.Backend.ListRoomsByCinema(c.UserContext(), session.AccessToken, uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]fiber.Map, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, fiber.Map{
			"room":     backend.RoomFromModel(r),
			"type":     r.Type,
			"status":   r.Status,
			"capacity": r.Capacity,
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, out)
}
