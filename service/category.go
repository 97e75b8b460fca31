package service

import (
	"errors"

	"finbook/models"
	"finbook/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repository.CategoryStore
}

func NewCategoryService(categories *repository.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

type CreateCategoryInput struct {
	Name string
	Type models.TransactionType
}

type UpdateCategoryInput struct {
	Name *string
	Type *models.TransactionType
}

func (s *CategoryService) List(userID uint, txnType models.TransactionType) ([]models.Category, error) {
	return s.categories.ListOwned(userID, txnType)
}

func (s *CategoryService) Create(userID uint, input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   input.Name,
		Type:   input.Type,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) find(userID, categoryID uint) (*models.Category, error) {
	category, err := s.categories.FindOwned(userID, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return category, nil
}

// Update renames a category. Changing its type while ledger entries still
// reference it would silently flip their reporting side, so that is rejected.
func (s *CategoryService) Update(userID, categoryID uint, changes UpdateCategoryInput) (*models.Category, error) {
	category, err := s.find(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if changes.Type != nil && *changes.Type != category.Type {
		inUse, err := s.categories.HasTransactions(category.ID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, ErrInvalidOperation
		}
		category.Type = *changes.Type
	}
	if changes.Name != nil {
		category.Name = *changes.Name
	}

	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category that no ledger entry references.
func (s *CategoryService) Delete(userID, categoryID uint) error {
	category, err := s.find(userID, categoryID)
	if err != nil {
		return err
	}

	inUse, err := s.categories.HasTransactions(category.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInvalidOperation
	}

	return s.categories.SoftDelete(category.ID)
}
