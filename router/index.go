package router

import (
	"cinema_admin/handler"
	"cinema_admin/middleware"
	"cinema_admin/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")
	protected := middleware.Protected(h.Sessions)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/refresh", h.RefreshSession)
	auth.Post("/logout", protected, h.Logout)
	auth.Get("/me", protected, h.Me)

	room := v1.Group("/room")
	room.Post("/seat-plan", protected, validate.SeatPlan(), h.PreviewSeatPlan)
	room.Post("/", protected, validate.CreateRoom(), h.CreateRoom)
	room.Get("/:roomId/layout", protected, validate.GetById("roomId"), h.GetRoomLayout)
	room.Get("/:roomId/edit", protected, validate.GetById("roomId"), h.GetRoomEditForm)
	room.Put("/:roomId", protected, validate.EditRoom("roomId"), h.EditRoom)

	cinema := v1.Group("/cinema")
	cinema.Get("/:cinemaId/rooms", protected, validate.GetById("cinemaId"), h.ListCinemaRooms)

	movie := v1.Group("/movie")
	movie.Get("/", protected, h.ListMovies)

	showtime := v1.Group("/showtime")
	showtime.Post("/batch/preview", protected, validate.BatchSchedule(), h.PreviewBatch)
	showtime.Post("/batch/overlaps", protected, validate.OverlapCheck(), h.CheckOverlaps)
	showtime.Post("/batch", protected, validate.BatchSchedule(), h.SaveBatch)
	showtime.Post("/check-availability", protected, validate.CheckAvailability(), h.CheckAvailability)

	scheduleTemplate := v1.Group("/schedule")
	scheduleTemplate.Get("/", protected, validate.FilterScheduleTemplate(), h.GetScheduleTemplate)
	scheduleTemplate.Get("/:scheduleTemplateId", protected, validate.GetById("scheduleTemplateId"), h.GetScheduleTemplateById)
	scheduleTemplate.Post("/", protected, validate.CreateScheduleTemplate(), h.CreateScheduleTemplate)
	scheduleTemplate.Put("/:scheduleTemplateId", protected, validate.UpdateScheduleTemplate("scheduleTemplateId"), h.UpdateScheduleTemplate)
	scheduleTemplate.Delete("/:scheduleTemplateId", protected, validate.GetById("scheduleTemplateId"), h.DeleteScheduleTemplate)

	ws := v1.Group("/ws", handler.UpgradeWebSocket)
	ws.Get("/seat-plan", protected, websocket.New(h.SeatPlanSocket))
	ws.Get("/room/:roomId", protected, validate.GetById("roomId"), websocket.New(h.RoomLayoutSocket))
}
