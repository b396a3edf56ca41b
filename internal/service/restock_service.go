package service

import (
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"go.uber.org/zap"
)

type RestockRequestInput struct {
	OutletID string
	Items    []model.RestockItem
	Note     *string
}

type RestockService interface {
	CreateRequest(input RestockRequestInput) (*model.RestockRequest, error)
	GetAllRequests() []model.RestockRequest
}

type restockService struct {
	catalog *model.Catalog
	repo    repository.RestockRepository
	journal repository.JournalRepository
	events  *EventPublisher
	log     *zap.Logger
	now     func() time.Time
}

func NewRestockService(
	catalog *model.Catalog,
	repo repository.RestockRepository,
	journal repository.JournalRepository,
	events *EventPublisher,
	log *zap.Logger,
) RestockService {
	return &restockService{
		catalog: catalog,
		repo:    repo,
		journal: journal,
		events:  events,
		log:     log.Named("restock"),
		now:     time.Now,
	}
}

// CreateRequest only records the ask; stock moves later through a distribution.
func (s *restockService) CreateRequest(input RestockRequestInput) (*model.RestockRequest, error) {
	if _, err := requireOutlet(s.catalog, input.OutletID); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ledger.InvalidInput("items must not be empty")
	}
	for i, item := range input.Items {
		if _, err := requireProduct(s.catalog, i+1, item.ProductID, item.Qty); err != nil {
			return nil, err
		}
	}

	req := s.repo.Append(model.RestockRequest{
		Date:     s.now().UTC(),
		OutletID: input.OutletID,
		Items:    input.Items,
		Note:     input.Note,
		Status:   model.RestockPending,
	})

	if err := s.journal.RecordRestockRequest(&req); err != nil {
		s.log.Error("journal restock request", zap.Int("request_id", req.ID), zap.Error(err))
	}

	s.log.Info("restock requested", zap.Int("request_id", req.ID), zap.String("outlet_id", req.OutletID))

	go s.events.Publish(map[string]interface{}{
		"type":       "restock_update",
		"action":     "restock_requested",
		"request_id": req.ID,
		"outlet_id":  req.OutletID,
		"message":    "Permintaan restock dari " + s.catalog.OutletName(req.OutletID),
	})

	return &req, nil
}

func (s *restockService) GetAllRequests() []model.RestockRequest {
	return s.repo.FindAll()
}
