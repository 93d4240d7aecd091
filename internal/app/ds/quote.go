package ds

import "time"

// Таблица коммерческих предложений.
// Предложение ссылается максимум на один источник: RFQ или кластерный запрос.
type Quote struct {
	ID               uint        `gorm:"primaryKey"`
	QuoteNumber      string      `gorm:"type:varchar(50);unique;not null"`
	RFQID            *uint       `gorm:"default:null"`
	ClusterRequestID *uint       `gorm:"default:null"`
	UserID           *uint       `gorm:"default:null"`
	Items            []QuoteItem `gorm:"foreignKey:QuoteID"`
	Subtotal         float64     `gorm:"type:decimal(12,2);not null"`
	TaxRate          float64     `gorm:"type:decimal(5,2);not null;default:0"` // процент
	TaxAmount        float64     `gorm:"type:decimal(12,2);not null"`
	Total            float64     `gorm:"type:decimal(12,2);not null"`
	PaymentTerms     string      `gorm:"type:varchar(50)"`
	ValidUntil       *time.Time  `gorm:"default:null"`
	Notes            string      `gorm:"type:text"`
	Status           QuoteStatus `gorm:"type:varchar(20);not null;default:'sent'"`
	CreatedAt        time.Time   `gorm:"not null"`
	UpdatedAt        time.Time   `gorm:"not null"`
	AcceptedAt       *time.Time  `gorm:"default:null"`

	RFQ            *RFQ            `gorm:"foreignKey:RFQID"`
	ClusterRequest *ClusterRequest `gorm:"foreignKey:ClusterRequestID"`
}

// Позиция предложения. Total - производное поле quantity × unit_price,
// отдельно не выставляется.
type QuoteItem struct {
	ID          uint    `gorm:"primaryKey"`
	QuoteID     uint    `gorm:"not null;index"`
	Position    int     `gorm:"not null"` // порядок строк в предложении
	Description string  `gorm:"type:text;not null"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null"`
	Total       float64 `gorm:"type:decimal(12,2);not null"`
}
