package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType defines the direction of a ledger entry
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income/expense ledger entry affecting exactly one
// wallet. Amount is stored unsigned; the sign is derived from Type when the
// wallet balance is adjusted.
type Transaction struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"userId"`
	WalletID        uint            `gorm:"not null;index" json:"walletId"`
	CategoryID      uint            `gorm:"not null;index" json:"categoryId"`
	Reference       string          `gorm:"type:varchar(50);index" json:"reference"`
	Name            string          `gorm:"type:varchar(120);not null" json:"name"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Type            TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	TransactionDate time.Time       `gorm:"not null;index" json:"transactionDate"`
	Note            *string         `gorm:"type:text" json:"note"`

	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Wallet   Wallet   `gorm:"foreignKey:WalletID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount returns the amount with sign applied according to the type:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
