package service

import (
	"context"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
)

// ChangeLogService appends to and reads the append-only mutation log.
// Generated entry ids are UUIDs; that is part of the Append contract.
type ChangeLogService interface {
	List(ctx context.Context) ([]model.InventoryChange, error)
	Append(ctx context.Context, entry *model.InventoryChange) (string, error)
}

type changeLogService struct {
	changeRepo repository.ChangeRepository
}

func NewChangeLogService(changeRepo repository.ChangeRepository) ChangeLogService {
	return &changeLogService{changeRepo: changeRepo}
}

func (s *changeLogService) List(ctx context.Context) ([]model.InventoryChange, error) {
	changes, err := s.changeRepo.FindAll(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return changes, nil
}

func (s *changeLogService) Append(ctx context.Context, entry *model.InventoryChange) (string, error) {
	if errs := validator.ValidateStruct(entry); len(errs) > 0 {
		first := errs[0]
		return "", fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	now := time.Now()
	if entry.DateStr == "" {
		entry.DateStr = now.Format("02 Jan 2006")
	}
	if entry.TimeStr == "" {
		entry.TimeStr = now.Format("15:04:05")
	}

	if err := s.changeRepo.Create(ctx, entry); err != nil {
		return "", classify(err)
	}
	return entry.ID, nil
}
