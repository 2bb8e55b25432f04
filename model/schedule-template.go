package model

import "cinema_admin/schedule"

type ScheduleTemplate struct {
	DTO

	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:120;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	ScheduleType string              `gorm:"size:10;not null;default:daily" json:"scheduleType"`
	SelectedDays []int               `gorm:"type:json;serializer:json" json:"selectedDays"`
	TimeSlots    []schedule.TimeSlot `gorm:"type:json;serializer:json" json:"timeSlots"`
	BasePrice    int64               `gorm:"not null;default:0;check:base_price >= 0" json:"basePrice"`

	CreatedBy string `gorm:"size:100" json:"createdBy"`
}
type FilterScheduleTemplateInput struct {
	Pagination
	ScheduleType string `query:"scheduleType" validate:"omitempty,oneof=daily weekly"`
	Search       string `query:"search" validate:"omitempty,max=100"`
}
type CreateScheduleTemplateInput struct {
	Name         string              `json:"name" validate:"required,min=3,max=100"`
	Description  string              `json:"description"`
	ScheduleType string              `json:"scheduleType" validate:"required,oneof=daily weekly"`
	SelectedDays []int               `json:"selectedDays" validate:"required_if=ScheduleType weekly,dive,min=0,max=7"`
	TimeSlots    []schedule.TimeSlot `json:"timeSlots" validate:"required,min=1,dive"`
	BasePrice    int64               `json:"basePrice" validate:"min=0"`
}

type UpdateScheduleTemplateInput struct {
	Name         *string             `json:"name" validate:"omitempty,min=3,max=100"`
	Description  *string             `json:"description"`
	ScheduleType *string             `json:"scheduleType" validate:"omitempty,oneof=daily weekly"`
	SelectedDays []int               `json:"selectedDays" validate:"omitempty,dive,min=0,max=7"`
	TimeSlots    []schedule.TimeSlot `json:"timeSlots" validate:"omitempty,dive"`
	BasePrice    *int64              `json:"basePrice" validate:"omitempty,min=0"`
}
