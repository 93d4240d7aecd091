package repository

import (
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// GetHardwareProducts возвращает активные карточки оборудования в порядке витрины
func (r *Repository) GetHardwareProducts() ([]ds.HardwareProduct, error) {
	var products []ds.HardwareProduct
	err := r.db.Preload("Stats", func(db *gorm.DB) *gorm.DB {
		return db.Order("hardware_stats.position ASC")
	}).Where("is_active = ?", true).Order("position ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Repository) GetHardwareProductByID(id uint) (*ds.HardwareProduct, error) {
	var product ds.HardwareProduct
	err := r.db.Preload("Stats", func(db *gorm.DB) *gorm.DB {
		return db.Order("hardware_stats.position ASC")
	}).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) CreateHardwareProduct(product *ds.HardwareProduct) error {
	return r.db.Create(product).Error
}

// UpdateHardwareProduct сохраняет карточку и заменяет её характеристики
func (r *Repository) UpdateHardwareProduct(product *ds.HardwareProduct, replaceStats bool) error {
	if replaceStats {
		if err := r.db.Where("product_id = ?", product.ID).Delete(&ds.HardwareStat{}).Error; err != nil {
			return err
		}
	}
	return r.db.Session(&gorm.Session{FullSaveAssociations: replaceStats}).Save(product).Error
}

// SetHardwareImage привязывает объект MinIO к карточке оборудования
func (r *Repository) SetHardwareImage(id uint, imageKey string) error {
	return r.db.Model(&ds.HardwareProduct{}).Where("id = ?", id).
		Update("image_key", imageKey).Error
}

func (r *Repository) GetPricingPlans() ([]ds.PricingPlan, error) {
	var plans []ds.PricingPlan
	if err := r.db.Order("position ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *Repository) GetPartners() ([]ds.Partner, error) {
	var partners []ds.Partner
	if err := r.db.Order("position ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *Repository) GetGalleryImages() ([]ds.GalleryImage, error) {
	var images []ds.GalleryImage
	if err := r.db.Order("position ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *Repository) CreateGalleryImage(image *ds.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *Repository) GetGalleryImageByID(id uint) (*ds.GalleryImage, error) {
	var image ds.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *Repository) DeleteGalleryImage(id uint) error {
	return r.db.Delete(&ds.GalleryImage{}, id).Error
}
