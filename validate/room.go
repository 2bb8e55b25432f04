package validate

import (
	"errors"
	"fmt"
	"strconv"

	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/seatplan"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// FieldError là lỗi gắn với một trường của form phòng
type FieldError struct {
	Key     string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// CheckGeometry kiểm tra kích thước theo loại phòng và vùng VIP nằm trong lưới
func CheckGeometry(roomType model.RoomType, g model.SeatGeometryInput) *FieldError {
	limit, ok := model.RoomLimits[roomType]
	if !ok {
		return &FieldError{Key: "type", Message: "Loại phòng không hợp lệ"}
	}
	if g.RowCount < limit.MinRows || g.RowCount > limit.MaxRows {
		return &FieldError{Key: "rowCount", Message: fmt.Sprintf("Loại phòng %s phải có từ %d đến %d hàng ghế (hiện tại: %d)",
			roomType, limit.MinRows, limit.MaxRows, g.RowCount)}
	}
	if g.ColumnCount < limit.MinColumns || g.ColumnCount > limit.MaxColumns {
		return &FieldError{Key: "columnCount", Message: fmt.Sprintf("Loại phòng %s phải có từ %d đến %d cột (hiện tại: %d)",
			roomType, limit.MinColumns, limit.MaxColumns, g.ColumnCount)}
	}
	return CheckVipZone(g)
}

// CheckVipZone chỉ áp dụng cho vùng VIP nhập tay. Vùng được phép chạm hàng
// cuối, hàng cuối vẫn là ghế đôi.
func CheckVipZone(g model.SeatGeometryInput) *FieldError {
	z := g.VipZone
	if z == nil {
		return nil
	}
	start, ok1 := seatplan.RowIndex(z.RowStart)
	end, ok2 := seatplan.RowIndex(z.RowEnd)
	if !ok1 || !ok2 || start > end || end >= g.RowCount {
		return &FieldError{Key: "vipZone", Message: "Hàng VIP không hợp lệ"}
	}
	if z.ColStart < 1 || z.ColStart > z.ColEnd || z.ColEnd > g.ColumnCount {
		return &FieldError{Key: "vipZone", Message: "Cột VIP không hợp lệ"}
	}
	return nil
}

func SeatPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SeatGeometryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if fe := CheckVipZone(input); fe != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fe.Message, fe, fe.Key)
		}
		c.Locals("seatPlanInput", input)
		return c.Next()
	}
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}
		if input.Type == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng chọn loại phòng", nil, "type")
		}

		// Validate input
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Kiểm tra giới hạn theo loại phòng
		if fe := CheckGeometry(input.Type, input.Seat); fe != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fe.Message, fe, fe.Key)
		}

		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// param
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// body parse
		var input model.EditRoomInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()), err)
		}
		input.RoomId = uint(valueKey)

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.Seat != nil && input.Type != nil {
			if fe := CheckGeometry(*input.Type, *input.Seat); fe != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fe.Message, fe, fe.Key)
			}
		}

		c.Locals("inputEditRoom", input)
		return c.Next()
	}
}
