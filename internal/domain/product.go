package domain

// Product представляет товар на складе,
// соответствует таблице products в бд
type Product struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"size:255;not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Quantity     int     `json:"quantity" gorm:"default:0"`
	UserID       uint    `json:"user_id" gorm:"not null;index"`
	ProductImage string  `json:"product_image" gorm:"column:product_image"`
}

func (Product) TableName() string {
	return "products"
}

// ProductUpdate описывает частичное обновление товара.
// nil означает "поле не менять" — отсутствие поля в запросе,
// а не установку в текущее значение.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}
