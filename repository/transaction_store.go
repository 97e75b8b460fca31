package repository

import (
	"time"

	"finbook/models"

	"gorm.io/gorm"
)

// TransactionFilter narrows List results. Zero values mean "no filter".
type TransactionFilter struct {
	WalletID   uint
	CategoryID uint
	Type       models.TransactionType
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// TransactionStore owns transaction records.
type TransactionStore struct {
	db *gorm.DB
}

func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Create inserts the transaction row inside the given unit of work.
func (s *TransactionStore) Create(tx *gorm.DB, txn *models.Transaction) error {
	return tx.Create(txn).Error
}

// FindOwned returns the transaction only if it exists, is not soft-deleted and
// belongs to userID.
func (s *TransactionStore) FindOwned(userID, txnID uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", txnID, userID).
		First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// FindOwnedIn is FindOwned scoped to an open unit of work.
func (s *TransactionStore) FindOwnedIn(tx *gorm.DB, userID, txnID uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := tx.Where("id = ? AND user_id = ?", txnID, userID).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// Save persists field updates inside the given unit of work.
func (s *TransactionStore) Save(tx *gorm.DB, txn *models.Transaction) error {
	return tx.Save(txn).Error
}

// SoftDelete marks the transaction deleted inside the given unit of work.
// gorm's DeletedAt scoping excludes it from every later read.
func (s *TransactionStore) SoftDelete(tx *gorm.DB, txnID uint) error {
	return tx.Delete(&models.Transaction{}, txnID).Error
}

// List returns the user's transactions matching the filter, newest first,
// together with the total match count for pagination.
func (s *TransactionStore) List(userID uint, filter TransactionFilter) ([]models.Transaction, int64, error) {
	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filter.WalletID != 0 {
		query = query.Where("wallet_id = ?", filter.WalletID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR note LIKE ?", like, like)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date < ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var txns []models.Transaction
	if err := query.Preload("Category").
		Order("transaction_date DESC, id DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&txns).Error; err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// ListRange returns all of the user's non-deleted transactions in
// [start, end), oldest first. Used by the dashboard aggregation.
func (s *TransactionStore) ListRange(userID uint, start, end time.Time) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.db.Preload("Category").
		Where("user_id = ? AND transaction_date >= ? AND transaction_date < ?", userID, start, end).
		Order("transaction_date ASC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
