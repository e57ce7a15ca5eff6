package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/contractgpt/backend/model"
)

// ContractStore is the repository for saved contract metadata. Reads are
// always filtered by owner; rows are never updated after insert.
type ContractStore struct {
	db *gorm.DB
}

func NewContractStore(db *gorm.DB) *ContractStore {
	return &ContractStore{db: db}
}

// Create inserts one contract record
func (s *ContractStore) Create(record *model.ContractRecord) error {
	if err := s.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to insert contract record: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's most recent contracts, newest first
func (s *ContractStore) ListByOwner(ownerID uint, limit int) ([]model.ContractRecord, error) {
	var records []model.ContractRecord
	query := s.db.Where("user_id = ?", ownerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return records, nil
}

// GetByOwner returns one contract if it belongs to the owner
func (s *ContractStore) GetByOwner(ownerID, id uint) (*model.ContractRecord, error) {
	var record model.ContractRecord
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
