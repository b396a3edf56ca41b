package repository

import "go-inventory-hub/internal/model"

type RestockRepository interface {
	Append(req model.RestockRequest) model.RestockRequest
	FindAll() []model.RestockRequest
	CountByStatus(status model.RestockStatus) int
}

type restockRepo struct {
	log memLog[model.RestockRequest]
}

func NewRestockRepo() RestockRepository {
	return &restockRepo{}
}

func (r *restockRepo) Append(req model.RestockRequest) model.RestockRequest {
	req.Items = append([]model.RestockItem(nil), req.Items...)
	return r.log.append(func(seq int) model.RestockRequest {
		req.ID = seq
		return req
	})
}

func (r *restockRepo) FindAll() []model.RestockRequest {
	all := r.log.all()
	for i := range all {
		all[i].Items = append([]model.RestockItem(nil), all[i].Items...)
	}
	return all
}

func (r *restockRepo) CountByStatus(status model.RestockStatus) int {
	return r.log.count(func(req model.RestockRequest) bool {
		return req.Status == status
	})
}
