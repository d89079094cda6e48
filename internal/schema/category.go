package schema

import (
	"github.com/cl7paBka/goar-tomsk-web/internal/models"
)

type CategoryRead struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	ParentID      *uint          `json:"parent_id,omitempty"`
	Subcategories []CategoryRead `json:"subcategories"`
	Products      []ProductRead  `json:"products"`
}

// ToCategoryRead рекурсивно разворачивает предзагруженные подкатегории и продукты.
// Рекурсия ограничена направлением вниз по дереву: parent_id образует дерево,
// циклы отсекаются на записи, поэтому глубина конечна.
func ToCategoryRead(c *models.Category) CategoryRead {
	subcategories := make([]CategoryRead, 0, len(c.Subcategories))
	for i := range c.Subcategories {
		subcategories = append(subcategories, ToCategoryRead(&c.Subcategories[i]))
	}
	products := make([]ProductRead, 0, len(c.Products))
	for i := range c.Products {
		products = append(products, ToProductRead(&c.Products[i]))
	}
	return CategoryRead{
		ID:            c.ID,
		Name:          c.Name,
		ParentID:      c.ParentID,
		Subcategories: subcategories,
		Products:      products,
	}
}
