package models

import "time"

// Customer represents a registered customer who can place cutting orders
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string    `gorm:"uniqueIndex;not null" json:"phone"`
	Address     string    `gorm:"not null" json:"address"`
	Nationality string    `gorm:"not null" json:"nationality"`
	Orders      []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
