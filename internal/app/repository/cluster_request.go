package repository

import "backend/internal/app/ds"

func (r *Repository) CreateClusterRequest(req *ds.ClusterRequest) error {
	return r.db.Create(req).Error
}

func (r *Repository) GetClusterRequests(status ds.RequestStatus) ([]ds.ClusterRequest, error) {
	var requests []ds.ClusterRequest

	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *Repository) GetClusterRequestByID(id uint) (*ds.ClusterRequest, error) {
	var req ds.ClusterRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) UpdateClusterRequestStatus(id uint, status ds.RequestStatus) error {
	return r.db.Model(&ds.ClusterRequest{}).Where("id = ?", id).Update("status", status).Error
}
