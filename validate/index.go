package validate

import (
	"errors"
	"fmt"
	"strconv"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/schedule"
	"cinema_admin/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return schedule.ValidClock(fl.Field().String())
	})
	return v
}

// Struct validate dữ liệu không đi qua fiber (ví dụ websocket)
func Struct(input any) error {
	return validate.Struct(input)
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tên đăng nhập hoặc mật khẩu không hợp lệ", err)
		}
		c.Locals("loginInput", input)
		return c.Next()
	}
}
