package ds

import "time"

// Таблица пользователей
type User struct {
	ID               uint   `gorm:"primaryKey"`
	Login            string `gorm:"type:varchar(50);unique;not null"`
	Password         string `gorm:"type:varchar(255);not null"`
	IsAdmin          bool   `gorm:"type:boolean;default:false;not null"`
	Email            string `gorm:"type:varchar(100)"`
	FullName         string `gorm:"type:varchar(100)"`
	Company          string `gorm:"type:varchar(100)"`
	StripeCustomerID string `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
