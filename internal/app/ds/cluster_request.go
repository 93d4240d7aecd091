package ds

import "time"

// Таблица запросов на кластер - структурированная заявка на multi-GPU развёртывание
type ClusterRequest struct {
	ID                  uint          `gorm:"primaryKey"`
	UserID              *uint         `gorm:"default:null"`
	FirstName           string        `gorm:"type:varchar(50);not null"`
	LastName            string        `gorm:"type:varchar(50);not null"`
	Email               string        `gorm:"type:varchar(100);not null"`
	Company             string        `gorm:"type:varchar(100);not null"`
	ClusterRequirements string        `gorm:"type:text;not null"`
	NumberOfGPUs        string        `gorm:"type:varchar(50)"` // свободный формат: "64", "100+"
	RentalDuration      string        `gorm:"type:varchar(50)"`
	ProjectDescription  string        `gorm:"type:text"`
	HearAboutUs         string        `gorm:"type:varchar(100)"`
	Status              RequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt           time.Time     `gorm:"not null"`
	UpdatedAt           time.Time     `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}
