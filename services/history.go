package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const historyNotFound = "history not found, id ="

// HistoryService owns the correlation records that stitch the other
// services' audit ids together. The six foreign ids are stored as-is;
// no cross-service existence check is made. History writes no audit
// rows of its own. Size-check batch policy.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

func (s *HistoryService) FindByID(id uint) (*dto.HistoryDto, error) {
	history, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, common.NewNotFound(historyNotFound, id)
	}
	return dto.ToHistoryDto(history), nil
}

func (s *HistoryService) FindAllByID(ids []uint) ([]dto.HistoryDto, error) {
	var found []models.History
	if err := s.DB.Find(&found, ids).Error; err != nil {
		return nil, err
	}

	histories, err := common.ResolveFound(ids, historyNotFound, found, func(h models.History) uint {
		return h.ID
	})
	if err != nil {
		return nil, err
	}
	return dto.ToHistoryDtoList(histories), nil
}

func (s *HistoryService) Create(payload *dto.HistoryDto) (*dto.HistoryDto, error) {
	history := dto.ToHistoryEntity(payload)
	if err := s.DB.Create(history).Error; err != nil {
		return nil, err
	}
	return dto.ToHistoryDto(history), nil
}

// Update merges the patch's audit ids onto the stored record; ids the
// patch does not carry keep their current values, so each service's
// audit id can be recorded independently.
func (s *HistoryService) Update(id uint, patch *dto.HistoryDto) (*dto.HistoryDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(historyNotFound, id)
	}

	merged := dto.MergeHistory(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	return dto.ToHistoryDto(merged), nil
}

func (s *HistoryService) lookup(id uint) (*models.History, error) {
	var history models.History
	err := s.DB.First(&history, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}
