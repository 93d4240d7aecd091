package repository

import "backend/internal/app/ds"

func (r *Repository) CreateRFQ(rfq *ds.RFQ) error {
	return r.db.Create(rfq).Error
}

// GetRFQs возвращает заявки, опционально отфильтрованные по статусу.
// Новые сверху - админка показывает входящие первыми.
func (r *Repository) GetRFQs(status ds.RequestStatus) ([]ds.RFQ, error) {
	var rfqs []ds.RFQ

	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&rfqs).Error; err != nil {
		return nil, err
	}
	return rfqs, nil
}

func (r *Repository) GetRFQByID(id uint) (*ds.RFQ, error) {
	var rfq ds.RFQ
	if err := r.db.First(&rfq, id).Error; err != nil {
		return nil, err
	}
	return &rfq, nil
}

func (r *Repository) UpdateRFQStatus(id uint, status ds.RequestStatus) error {
	return r.db.Model(&ds.RFQ{}).Where("id = ?", id).Update("status", status).Error
}
