package database

import (
	"log"

	"cinema_admin/model"
	"cinema_admin/schedule"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func DefaultTemplates() []model.ScheduleTemplate {
	return []model.ScheduleTemplate{
		{
			Name:         "Ngày thường",
			Description:  "Lịch chiếu cả tuần, 5 suất/ngày",
			ScheduleType: string(schedule.Daily),
			SelectedDays: []int{},
			TimeSlots: []schedule.TimeSlot{
				{StartTime: "09:00"},
				{StartTime: "12:00"},
				{StartTime: "15:00"},
				{StartTime: "18:30", PriceAdjustment: 10000},
				{StartTime: "21:30", PriceAdjustment: 10000},
			},
			BasePrice: 75000,
			CreatedBy: "system",
		},
		{
			Name:         "Cuối tuần",
			Description:  "Thứ 6, thứ 7, chủ nhật, thêm suất khuya",
			ScheduleType: string(schedule.Weekly),
			SelectedDays: []int{5, 6, 0},
			TimeSlots: []schedule.TimeSlot{
				{StartTime: "10:00"},
				{StartTime: "13:30"},
				{StartTime: "17:00", PriceAdjustment: 15000},
				{StartTime: "20:30", PriceAdjustment: 20000},
				{StartTime: "23:45", PriceAdjustment: -10000},
			},
			BasePrice: 90000,
			CreatedBy: "system",
		},
	}
}

func SeedData(db *gorm.DB) {
	for _, tpl := range DefaultTemplates() {
		tpl.Slug = slug.Make(tpl.Name)
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.ScheduleTemplate{Slug: tpl.Slug}).FirstOrCreate(&tpl).Error; err != nil {
			log.Println("failed to seed data for schedule template:", tpl.Name, "error:", err)
		}
	}
}
