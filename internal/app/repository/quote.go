package repository

import (
	"time"

	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// CreateQuote сохраняет предложение вместе с позициями.
// Позиции пишутся каскадом через ассоциацию gorm.
func (r *Repository) CreateQuote(quote *ds.Quote) error {
	return r.db.Create(quote).Error
}

func (r *Repository) GetQuotes(status ds.QuoteStatus) ([]ds.Quote, error) {
	var quotes []ds.Quote

	query := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.position ASC")
	}).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *Repository) GetQuoteByID(id uint) (*ds.Quote, error) {
	var quote ds.Quote
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.position ASC")
	}).First(&quote, id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetQuoteByNumber ищет предложение по публичному номеру (QT-...)
func (r *Repository) GetQuoteByNumber(number string) (*ds.Quote, error) {
	var quote ds.Quote
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.position ASC")
	}).Where("quote_number = ?", number).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// MarkQuoteViewed переводит sent -> viewed при первом открытии клиентом.
// Остальные статусы не трогаем.
func (r *Repository) MarkQuoteViewed(id uint) error {
	return r.db.Model(&ds.Quote{}).
		Where("id = ? AND status = ?", id, ds.QuoteStatusSent).
		Update("status", ds.QuoteStatusViewed).Error
}

func (r *Repository) UpdateQuoteStatus(id uint, status ds.QuoteStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == ds.QuoteStatusAccepted {
		now := time.Now()
		updates["accepted_at"] = &now
	}
	return r.db.Model(&ds.Quote{}).Where("id = ?", id).Updates(updates).Error
}
