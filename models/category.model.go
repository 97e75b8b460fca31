package models

import "gorm.io/gorm"

// Category groups transactions for reporting. Each user owns their own set.
type Category struct {
	gorm.Model
	UserID uint            `gorm:"not null;index" json:"userId"`
	Name   string          `gorm:"type:varchar(64);not null" json:"name"`
	Type   TransactionType `gorm:"type:varchar(20);not null" json:"type"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
