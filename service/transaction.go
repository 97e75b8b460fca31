package service

import (
	"errors"
	"math"

	"finbook/models"
	"finbook/repository"

	"gorm.io/gorm"
)

// Pagination describes a page of list results.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// TransactionService orchestrates transaction operations: it resolves
// references before the unit of work begins and delegates the atomic part to
// the reconciler.
type TransactionService struct {
	reconciler *BalanceReconciler
	txns       *repository.TransactionStore
	categories *repository.CategoryStore
}

func NewTransactionService(reconciler *BalanceReconciler, txns *repository.TransactionStore, categories *repository.CategoryStore) *TransactionService {
	return &TransactionService{reconciler: reconciler, txns: txns, categories: categories}
}

func (s *TransactionService) checkCategory(userID, categoryID uint) error {
	if _, err := s.categories.FindOwned(userID, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Create validates the category reference and delegates to the reconciler.
func (s *TransactionService) Create(userID uint, input CreateTransactionInput) (*models.Transaction, error) {
	if err := s.checkCategory(userID, input.CategoryID); err != nil {
		return nil, err
	}
	return s.reconciler.Create(userID, input)
}

// Update validates a changed category reference and delegates to the
// reconciler, which also enforces that the wallet cannot change.
func (s *TransactionService) Update(userID, txnID uint, changes UpdateTransactionInput) (*models.Transaction, error) {
	if changes.CategoryID != nil {
		if err := s.checkCategory(userID, *changes.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.reconciler.Update(userID, txnID, changes)
}

func (s *TransactionService) Delete(userID, txnID uint) error {
	return s.reconciler.Delete(userID, txnID)
}

// Detail returns a single transaction owned by the caller.
func (s *TransactionService) Detail(userID, txnID uint) (*models.Transaction, error) {
	txn, err := s.txns.FindOwned(userID, txnID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return txn, nil
}

// List returns the caller's transactions matching the filter, newest first,
// with pagination metadata.
func (s *TransactionService) List(userID uint, filter repository.TransactionFilter) ([]models.Transaction, Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	txns, total, err := s.txns.List(userID, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	return txns, Pagination{
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}
