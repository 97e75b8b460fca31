package repository

import (
	"finbook/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletStore owns wallet records.
type WalletStore struct {
	db *gorm.DB
}

func NewWalletStore(db *gorm.DB) *WalletStore {
	return &WalletStore{db: db}
}

// FindOwned returns the wallet only if it exists, is not soft-deleted and
// belongs to userID.
func (s *WalletStore) FindOwned(userID, walletID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.Where("id = ? AND user_id = ?", walletID, userID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// FindOwnedForUpdate reads the wallet row inside tx with a row-level lock, so
// the read-modify-write of the cached balance cannot race with a concurrent
// request touching the same wallet. sqlite has no FOR UPDATE; its single-writer
// model serializes the read-modify-write on its own.
func (s *WalletStore) FindOwnedForUpdate(tx *gorm.DB, userID, walletID uint) (*models.Wallet, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var wallet models.Wallet
	if err := q.Where("id = ? AND user_id = ?", walletID, userID).First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// SetBalance writes the new cached balance for the wallet. Must run inside the
// same unit of work as the transaction-row mutation it accounts for.
func (s *WalletStore) SetBalance(tx *gorm.DB, walletID uint, balance decimal.Decimal) error {
	return tx.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", balance).Error
}

// ListOwned returns all non-deleted wallets for the user.
func (s *WalletStore) ListOwned(userID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

func (s *WalletStore) Create(wallet *models.Wallet) error {
	return s.db.Create(wallet).Error
}

func (s *WalletStore) Save(wallet *models.Wallet) error {
	return s.db.Save(wallet).Error
}

// SoftDelete marks the wallet deleted via gorm's DeletedAt.
func (s *WalletStore) SoftDelete(walletID uint) error {
	return s.db.Delete(&models.Wallet{}, walletID).Error
}

// HasTransactions reports whether the wallet still has non-deleted ledger
// entries attached.
func (s *WalletStore) HasTransactions(walletID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("wallet_id = ?", walletID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
