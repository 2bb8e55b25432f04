package model

import (
	"cinema_admin/schedule"
	"cinema_admin/utils"
)

type BatchScheduleInput struct {
	MovieId      uint                `json:"movieId"`
	RoomIds      []uint              `json:"roomIds" validate:"omitempty,dive,required"`
	StartDate    utils.CustomDate    `json:"startDate"`
	EndDate      utils.CustomDate    `json:"endDate"`
	ScheduleType string              `json:"scheduleType" validate:"omitempty,oneof=daily weekly"`
	SelectedDays []int               `json:"selectedDays" validate:"omitempty,dive,min=0,max=7"`
	TimeSlots    []schedule.TimeSlot `json:"timeSlots" validate:"omitempty,dive"`
	BasePrice    *int64              `json:"basePrice" validate:"omitempty,min=0"`
	TemplateId   *uint               `json:"templateId"`
}

type OverlapCheckInput struct {
	MovieId         uint                `json:"movieId"`
	DurationMinutes int                 `json:"durationMinutes" validate:"omitempty,min=1,max=600"`
	TimeSlots       []schedule.TimeSlot `json:"timeSlots" validate:"required,dive"`
}

type CheckAvailabilityInput struct {
	MovieId    uint   `json:"movieId" validate:"required"`
	RoomId     uint   `json:"roomId" validate:"required"`
	StartTime  string `json:"startTime" validate:"required,datetime=02-01-2006 15:04"`
	ShowtimeId *uint  `json:"showtimeId"`
}

type BatchPreviewResponse struct {
	Step     schedule.Step        `json:"step"`
	Movie    schedule.Movie       `json:"movie"`
	Count    int                  `json:"count"`
	Preview  []schedule.Candidate `json:"preview"`
	Overlaps []int                `json:"overlaps"`
	Alert    string               `json:"alert,omitempty"`
}
