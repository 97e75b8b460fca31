package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletType defines the kind of money container
type WalletType string

const (
	WalletTypeCash    WalletType = "CASH"
	WalletTypeBank    WalletType = "BANK"
	WalletTypeEWallet WalletType = "E_WALLET"
	WalletTypeSavings WalletType = "SAVINGS"
)

// Valid reports whether t is one of the known wallet types.
func (t WalletType) Valid() bool {
	switch t {
	case WalletTypeCash, WalletTypeBank, WalletTypeEWallet, WalletTypeSavings:
		return true
	}
	return false
}

// Wallet is a named money container with a cached balance. The balance is the
// system of record: every transaction mutation updates it in the same unit of
// work, it is never recomputed from history on read.
type Wallet struct {
	gorm.Model
	UserID uint       `gorm:"not null;index" json:"userId"`
	Name   string     `gorm:"type:varchar(120);not null" json:"name"`
	Type   WalletType `gorm:"type:varchar(20);not null" json:"type"`

	// Balance is the cached running balance. InitialBalance is the opening
	// amount at creation time and never changes afterwards, so the ledger can
	// be audited against it: balance == initial_balance + sum of signed
	// amounts of non-deleted transactions.
	Balance        decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"initialBalance"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Wallet) TableName() string {
	return "wallets"
}
