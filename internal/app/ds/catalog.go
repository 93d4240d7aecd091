package ds

import "gorm.io/datatypes"

// Таблица оборудования - витрина парка GPU (DGX H100, H200 и т.д.)
type HardwareProduct struct {
	ID          uint           `gorm:"primaryKey"`
	Category    string         `gorm:"type:varchar(100);not null"` // "The AI Workhorse"
	Name        string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:text"`
	ImageKey    *string        `gorm:"type:varchar(255)"` // объект в MinIO, nullable
	Stats       []HardwareStat `gorm:"foreignKey:ProductID"`
	IsActive    bool           `gorm:"type:boolean;default:true;not null"`
	Position    int            `gorm:"not null;default:0"`
}

// Характеристика оборудования ("8x" / "NVIDIA H100 GPUs")
type HardwareStat struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	Value     string `gorm:"type:varchar(50);not null"`
	Label     string `gorm:"type:varchar(100);not null"`
	Position  int    `gorm:"not null;default:0"`
}

// Тарифный план для секции Pricing
type PricingPlan struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"type:varchar(100);not null"`
	Price       string         `gorm:"type:varchar(50);not null"` // "$4,000", "Usage-Based", "Custom"
	Period      string         `gorm:"type:varchar(50)"`
	Description string         `gorm:"type:text"`
	Features    datatypes.JSON `gorm:"type:jsonb"` // массив строк
	CTA         string         `gorm:"type:varchar(50);not null"`
	Popular     bool           `gorm:"type:boolean;default:false;not null"`
	Position    int            `gorm:"not null;default:0"`
}

// Партнёр для секции "Trusted by"
type Partner struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"type:varchar(100);not null"`
	LogoKey  *string `gorm:"type:varchar(255)"` // объект в MinIO, nullable
	SiteURL  string  `gorm:"type:varchar(255)"`
	Position int     `gorm:"not null;default:0"`
}

// Изображение галереи "Inside the AI Revolution"
type GalleryImage struct {
	ID       uint   `gorm:"primaryKey"`
	ImageKey string `gorm:"type:varchar(255);not null"` // объект в MinIO
	AltText  string `gorm:"type:varchar(255)"`
	Position int    `gorm:"not null;default:0"`
}
