package helper

import (
	"fmt"
	"restro_pos/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueProductSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Product{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
