package domain

// Product is static reference data for the menu. The catalog has no
// lifecycle: it is seeded at startup and replaced wholesale on reload.
type Product struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:text;not null"`
	Price int64  `json:"price" gorm:"not null"`
	Image string `json:"image" gorm:"type:text"`
}

func (Product) TableName() string { return "products" }
