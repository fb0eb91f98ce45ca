package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

var ErrLinkNotFound = errors.New("category link not found")

// CategoryLinkService manages the per-user pairing of categories with
// transaction types. The store enforces uniqueness of the pairing, so a
// concurrent duplicate surfaces as domain.ErrLinkExists rather than a
// second row.
type CategoryLinkService struct {
	linkRepo     domain.CategoryLinkRepository
	categoryRepo domain.CategoryRepository
	typeRepo     domain.TransactionTypeRepository
}

func NewCategoryLinkService(
	linkRepo domain.CategoryLinkRepository,
	categoryRepo domain.CategoryRepository,
	typeRepo domain.TransactionTypeRepository,
) *CategoryLinkService {
	return &CategoryLinkService{linkRepo: linkRepo, categoryRepo: categoryRepo, typeRepo: typeRepo}
}

func (s *CategoryLinkService) CreateLink(ctx context.Context, identity domain.Identity, link *domain.CategoryLink) error {
	link.UserID = identity.UserID
	if err := link.Validate(); err != nil {
		return err
	}
	category, err := s.categoryRepo.FindByID(ctx, link.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bkErrors.NewValidationError("Unknown category")
		}
		return err
	}
	if category.UserID != identity.UserID {
		return bkErrors.NewValidationError("Unknown category")
	}
	exists, err := s.typeRepo.Exists(ctx, link.TransactionTypeID)
	if err != nil {
		return err
	}
	if !exists {
		return bkErrors.NewValidationError("Unknown transaction type")
	}
	return s.linkRepo.Save(ctx, link)
}

func (s *CategoryLinkService) GetLink(ctx context.Context, identity domain.Identity, linkID int64) (*domain.CategoryLink, error) {
	link, err := s.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if link.UserID != identity.UserID {
		return nil, ErrForbidden
	}
	return link, nil
}

func (s *CategoryLinkService) ListLinks(ctx context.Context, identity domain.Identity) ([]domain.CategoryLink, error) {
	return s.linkRepo.FindByUser(ctx, identity.UserID)
}

func (s *CategoryLinkService) DeleteLink(ctx context.Context, identity domain.Identity, linkID int64) error {
	if _, err := s.GetLink(ctx, identity, linkID); err != nil {
		return err
	}
	return s.linkRepo.Delete(ctx, linkID)
}
