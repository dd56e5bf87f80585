package models

import "time"

// Item represents a single width/length measurement attached to an order
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID" json:"-"`
	Width     float64   `gorm:"not null;check:width > 0" json:"width"`
	Length    float64   `gorm:"not null;check:length > 0" json:"length"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
