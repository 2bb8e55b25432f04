package helper

import (
	"fmt"

	"cinema_admin/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueTemplateSlug(tx *gorm.DB, name string, excludeId uint) string {
	base := slug.Make(name)
	if base == "" {
		base = "lich-chieu"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(&model.ScheduleTemplate{}).Unscoped().Where("slug = ?", result)
		if excludeId > 0 {
			q = q.Where("id <> ?", excludeId)
		}
		q.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
