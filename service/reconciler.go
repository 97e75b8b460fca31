package service

import (
	"errors"
	"log"
	"time"

	"finbook/models"
	"finbook/repository"
	"finbook/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateTransactionInput carries a validated create request into the
// reconciler. Amount is always positive; the sign comes from Type.
type CreateTransactionInput struct {
	WalletID        uint
	CategoryID      uint
	Name            string
	Amount          decimal.Decimal
	Type            models.TransactionType
	TransactionDate time.Time
	Note            *string
}

// UpdateTransactionInput carries a partial update. Nil fields are left
// untouched.
type UpdateTransactionInput struct {
	WalletID        *uint
	CategoryID      *uint
	Name            *string
	Amount          *decimal.Decimal
	Type            *models.TransactionType
	TransactionDate *time.Time
	Note            *string
}

// BalanceReconciler guarantees that the wallet balance and the transaction
// ledger change together or not at all. Every operation runs as one database
// transaction, with the wallet row locked for the duration of the
// read-modify-write.
type BalanceReconciler struct {
	db      *gorm.DB
	wallets *repository.WalletStore
	txns    *repository.TransactionStore
}

func NewBalanceReconciler(db *gorm.DB, wallets *repository.WalletStore, txns *repository.TransactionStore) *BalanceReconciler {
	return &BalanceReconciler{db: db, wallets: wallets, txns: txns}
}

// Create inserts the transaction and applies its signed amount to the owning
// wallet's balance in one unit of work.
func (r *BalanceReconciler) Create(userID uint, input CreateTransactionInput) (*models.Transaction, error) {
	var created *models.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		wallet, err := r.wallets.FindOwnedForUpdate(tx, userID, input.WalletID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		txn := &models.Transaction{
			UserID:          userID,
			WalletID:        input.WalletID,
			CategoryID:      input.CategoryID,
			Reference:       utils.GenReference(),
			Name:            input.Name,
			Amount:          input.Amount,
			Type:            input.Type,
			TransactionDate: input.TransactionDate,
			Note:            input.Note,
		}

		if err := r.txns.Create(tx, txn); err != nil {
			return err
		}

		newBalance := wallet.Balance.Add(txn.SignedAmount())
		if err := r.wallets.SetBalance(tx, wallet.ID, newBalance); err != nil {
			return err
		}

		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update reverses the old effect of the transaction on the wallet balance and
// applies the merged new one. Moving the transaction to a different wallet is
// rejected. When only non-financial fields change the reverse-then-reapply
// nets to zero by construction.
func (r *BalanceReconciler) Update(userID, txnID uint, changes UpdateTransactionInput) (*models.Transaction, error) {
	var updated *models.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		txn, err := r.txns.FindOwnedIn(tx, userID, txnID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		if changes.WalletID != nil && *changes.WalletID != txn.WalletID {
			return ErrInvalidOperation
		}

		wallet, err := r.wallets.FindOwnedForUpdate(tx, userID, txn.WalletID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Transaction %d references missing wallet %d", txn.ID, txn.WalletID)
			return ErrInconsistentState
		} else if err != nil {
			return err
		}

		balance := wallet.Balance.Sub(txn.SignedAmount())

		if changes.CategoryID != nil {
			txn.CategoryID = *changes.CategoryID
		}
		if changes.Name != nil {
			txn.Name = *changes.Name
		}
		if changes.Amount != nil {
			txn.Amount = *changes.Amount
		}
		if changes.Type != nil {
			txn.Type = *changes.Type
		}
		if changes.TransactionDate != nil {
			txn.TransactionDate = *changes.TransactionDate
		}
		if changes.Note != nil {
			txn.Note = changes.Note
		}

		balance = balance.Add(txn.SignedAmount())

		if err := r.txns.Save(tx, txn); err != nil {
			return err
		}
		if err := r.wallets.SetBalance(tx, wallet.ID, balance); err != nil {
			return err
		}

		updated = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete soft-deletes the transaction and reverses its effect on the wallet
// balance exactly once.
func (r *BalanceReconciler) Delete(userID, txnID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txn, err := r.txns.FindOwnedIn(tx, userID, txnID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		// Soft-deletion never removes the wallet the FK points at, so this
		// lookup failing means the invariant is already broken.
		wallet, err := r.wallets.FindOwnedForUpdate(tx, userID, txn.WalletID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Transaction %d references missing wallet %d", txn.ID, txn.WalletID)
			return ErrInconsistentState
		} else if err != nil {
			return err
		}

		if err := r.txns.SoftDelete(tx, txn.ID); err != nil {
			return err
		}

		newBalance := wallet.Balance.Sub(txn.SignedAmount())
		return r.wallets.SetBalance(tx, wallet.ID, newBalance)
	})
}
