package domain

import "time"

// Sale представляет зафиксированную продажу,
// соответствует таблице sales в бд. После создания запись неизменяема.
type Sale struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Pid           uint      `json:"pid" gorm:"column:pid;not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"column:stock_quantity;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
}

func (Sale) TableName() string {
	return "sales"
}
