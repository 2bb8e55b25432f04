package handler

import (
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func (h *Handler) GetScheduleTemplate(c *fiber.Ctx) error {
	db, err := h.db()
	if err != nil {
		return h.fail(c, err)
	}
	filter, err := utils.Locals[model.FilterScheduleTemplateInput](c, "filterScheduleTemplateInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	query := db.Model(&model.ScheduleTemplate{})
	if filter.ScheduleType != "" {
		query = query.Where("schedule_type = ?", filter.ScheduleType)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return h.fail(c, err)
	}

	templates := []model.ScheduleTemplate{}
	if err := utils.ApplyPagination(query.Order("id DESC"), filter.Limit, filter.Page).Find(&templates).Error; err != nil {
		return h.fail(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       templates,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func (h *Handler) GetScheduleTemplateById(c *fiber.Ctx) error {
	db, err := h.db()
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	var tpl model.ScheduleTemplate
	if err := db.First(&tpl, id).Error; err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tpl)
}

func (h *Handler) CreateScheduleTemplate(c *fiber.Ctx) error {
	db, err := h.db()
	if err != nil {
		return h.fail(c, err)
	}
	session, err := h.session(c)
	if err != nil {
		return h.fail(c, err)
	}
	input, err := utils.Locals[model.CreateScheduleTemplateInput](c, "createScheduleTemplateInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	var tpl model.ScheduleTemplate
	if err := copier.Copy(&tpl, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tpl.Slug = helper.GenerateUniqueTemplateSlug(db, tpl.Name, 0)
	tpl.CreatedBy = session.Username
	if tpl.SelectedDays == nil {
		tpl.SelectedDays = []int{}
	}

	if err := db.Create(&tpl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo template lịch chiếu", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, tpl)
}

func (h *Handler) UpdateScheduleTemplate(c *fiber.Ctx) error {
	db, err := h.db()
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}
	input, err := utils.Locals[model.UpdateScheduleTemplateInput](c, "updateScheduleTemplateInput")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	var tpl model.ScheduleTemplate
	if err := db.First(&tpl, id).Error; err != nil {
		return h.fail(c, err)
	}
	oldName := tpl.Name

	if err := copier.CopyWithOption(&tpl, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if tpl.Name != oldName {
		tpl.Slug = helper.GenerateUniqueTemplateSlug(db, tpl.Name, tpl.ID)
	}

	if err := db.Save(&tpl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tpl)
}

func (h *Handler) DeleteScheduleTemplate(c *fiber.Ctx) error {
	db, err := h.db()
	if err != nil {
		return h.fail(c, err)
	}
	id, err := utils.Locals[int](c, "inputId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, err)
	}

	result := db.Delete(&model.ScheduleTemplate{}, id)
	if result.Error != nil {
		return h.fail(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}
