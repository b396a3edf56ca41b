package repository

import "go-inventory-hub/internal/model"

type DistributionRepository interface {
	Append(d model.Distribution) model.Distribution
	FindAll() []model.Distribution
	Count() int
}

type distributionRepo struct {
	log memLog[model.Distribution]
}

func NewDistributionRepo() DistributionRepository {
	return &distributionRepo{}
}

func (r *distributionRepo) Append(d model.Distribution) model.Distribution {
	return r.log.append(func(int) model.Distribution { return d })
}

func (r *distributionRepo) FindAll() []model.Distribution {
	return r.log.all()
}

func (r *distributionRepo) Count() int {
	return r.log.count(nil)
}
