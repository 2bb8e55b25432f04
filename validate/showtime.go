package validate

import (
	"fmt"

	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// BatchSchedule chỉ kiểm tra định dạng. Thiếu phim/phòng do dialog xử lý.
func BatchSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BatchScheduleInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.TemplateId == nil {
			if input.StartDate.IsZero() {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng chọn ngày bắt đầu", nil, "startDate")
			}
			if input.EndDate.IsZero() {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng chọn ngày kết thúc", nil, "endDate")
			}
		}
		if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate.Time) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu", nil, "endDate")
		}

		c.Locals("batchScheduleInput", input)
		return c.Next()
	}
}

func OverlapCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OverlapCheckInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.MovieId == 0 && input.DurationMinutes == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng chọn phim hoặc nhập thời lượng", nil, "movieId")
		}
		c.Locals("overlapCheckInput", input)
		return c.Next()
	}
}

func CheckAvailability() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckAvailabilityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("checkAvailabilityInput", input)
		return c.Next()
	}
}
