package ds

import "time"

// Таблица RFQ - входящие запросы на аренду/покупку GPU.
// Создаётся публичной формой, жёстко не удаляется (только статус rejected).
type RFQ struct {
	ID                     uint          `gorm:"primaryKey"`
	UserID                 *uint         `gorm:"default:null"`
	Company                string        `gorm:"type:varchar(100);not null"`
	Email                  string        `gorm:"type:varchar(100);not null"`
	Phone                  string        `gorm:"type:varchar(30)"`
	GPUType                string        `gorm:"type:varchar(50);not null"` // H100, H200, DGX H100
	Quantity               int           `gorm:"not null"`
	DurationMonths         *int          `gorm:"default:null"`
	UseCase                string        `gorm:"type:text"`
	BudgetRange            string        `gorm:"type:varchar(50)"`
	AdditionalRequirements string        `gorm:"type:text"`
	Status                 RequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt              time.Time     `gorm:"not null"`
	UpdatedAt              time.Time     `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}
