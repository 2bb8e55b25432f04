package helper

import (
	"time"

	"cinema_admin/model"
	"cinema_admin/schedule"
)

// ApplyTemplateToInput điền các trường còn trống của form từ template
func ApplyTemplateToInput(input *model.BatchScheduleInput, t *model.ScheduleTemplate) {
	if t == nil {
		return
	}
	if input.ScheduleType == "" {
		input.ScheduleType = t.ScheduleType
	}
	if len(input.SelectedDays) == 0 {
		input.SelectedDays = append([]int{}, t.SelectedDays...)
	}
	if len(input.TimeSlots) == 0 {
		input.TimeSlots = append([]schedule.TimeSlot{}, t.TimeSlots...)
	}
	if input.BasePrice == nil {
		price := t.BasePrice
		input.BasePrice = &price
	}
}

// BuildSpec gom dữ liệu form thành đầu vào cho việc sinh suất chiếu
func BuildSpec(input model.BatchScheduleInput, movie schedule.Movie, rooms []schedule.Room, loc *time.Location, defaultPrice int64) schedule.Spec {
	scheduleType := schedule.Type(input.ScheduleType)
	if scheduleType == "" {
		scheduleType = schedule.Daily
	}
	price := defaultPrice
	if input.BasePrice != nil {
		price = *input.BasePrice
	}
	spec := schedule.Spec{
		Movie:        movie,
		Rooms:        rooms,
		ScheduleType: scheduleType,
		Days:         schedule.MaskFromInts(input.SelectedDays),
		TimeSlots:    input.TimeSlots,
		BasePrice:    price,
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		spec.Range = schedule.DateRange{Start: input.StartDate.In(loc), End: input.EndDate.In(loc)}
	}
	return spec
}
