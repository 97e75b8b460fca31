package repository

import (
	"finbook/models"

	"gorm.io/gorm"
)

// CategoryStore owns category records.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) FindOwned(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListOwned returns the user's categories, optionally filtered by type.
func (s *CategoryStore) ListOwned(userID uint, txnType models.TransactionType) ([]models.Category, error) {
	query := s.db.Where("user_id = ?", userID)
	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var categories []models.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *CategoryStore) Save(category *models.Category) error {
	return s.db.Save(category).Error
}

func (s *CategoryStore) SoftDelete(categoryID uint) error {
	return s.db.Delete(&models.Category{}, categoryID).Error
}

// HasTransactions reports whether non-deleted ledger entries still reference
// the category.
func (s *CategoryStore) HasTransactions(categoryID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Seed creates the default category set for a new user.
func (s *CategoryStore) Seed(userID uint) error {
	defaults := []models.Category{
		{UserID: userID, Name: "Salary", Type: models.TransactionTypeIncome},
		{UserID: userID, Name: "Other Income", Type: models.TransactionTypeIncome},
		{UserID: userID, Name: "Food & Drink", Type: models.TransactionTypeExpense},
		{UserID: userID, Name: "Transport", Type: models.TransactionTypeExpense},
		{UserID: userID, Name: "Shopping", Type: models.TransactionTypeExpense},
		{UserID: userID, Name: "Bills", Type: models.TransactionTypeExpense},
		{UserID: userID, Name: "Other Expense", Type: models.TransactionTypeExpense},
	}
	return s.db.Create(&defaults).Error
}
