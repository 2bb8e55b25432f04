package handler

import (
	"context"
	"log"

	"cinema_admin/auth"
	"cinema_admin/middleware"
	"cinema_admin/model"
	"cinema_admin/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeWebSocket chỉ cho qua request websocket
func UpgradeWebSocket(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SeatPlanSocket nhận kích thước phòng và trả lại sơ đồ ghế sau mỗi lần sửa
func (h *Handler) SeatPlanSocket(c *websocket.Conn) {
	defer c.Close()
	for {
		var input model.SeatGeometryInput
		if err := c.ReadJSON(&input); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Lỗi đọc websocket sơ đồ ghế: %v", err)
			}
			return
		}

		var reply any
		if err := validate.Struct(&input); err != nil {
			reply = map[string]string{"error": err.Error()}
		} else if fe := validate.CheckVipZone(input); fe != nil {
			reply = map[string]string{"error": fe.Message, "keyError": fe.Key}
		} else {
			reply = input.Plan()
		}
		if err := c.WriteJSON(reply); err != nil {
			return
		}
	}
}

// RoomLayoutSocket gửi sơ đồ hiện tại rồi đẩy các lần cập nhật qua redis
func (h *Handler) RoomLayoutSocket(c *websocket.Conn) {
	defer c.Close()

	session, ok := c.Locals(middleware.SessionKey).(*auth.Session)
	if !ok || session == nil {
		_ = c.WriteJSON(map[string]string{"error": "unauthorized"})
		return
	}
	id, _ := c.Locals("inputId").(int)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	room, err := h.Backend.GetRoom(ctx, session.AccessToken, uint(id))
	if err != nil {
		_ = c.WriteJSON(map[string]string{"error": err.Error()})
		return
	}
	if err := c.WriteJSON(roomView(room)); err != nil {
		return
	}

	// client đóng kết nối thì huỷ subscribe
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if h.Redis == nil {
		<-ctx.Done()
		return
	}
	pubsub := h.Redis.Subscribe(ctx, roomChannel(uint(id)))
	defer pubsub.Close()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
