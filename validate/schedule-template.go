package validate

import (
	"errors"
	"fmt"
	"strconv"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateScheduleTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScheduleTemplateInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Truyền vào Locals
		c.Locals("createScheduleTemplateInput", input)

		return c.Next()
	}
}

func UpdateScheduleTemplate(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateScheduleTemplateInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputId", id)
		c.Locals("updateScheduleTemplateInput", input)
		return c.Next()
	}
}

func FilterScheduleTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterScheduleTemplateInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("filterScheduleTemplateInput", input)
		return c.Next()
	}
}
