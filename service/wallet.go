package service

import (
	"errors"

	"finbook/models"
	"finbook/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService covers wallet CRUD. Balance mutations never happen here; they
// belong to the reconciler.
type WalletService struct {
	wallets *repository.WalletStore
}

func NewWalletService(wallets *repository.WalletStore) *WalletService {
	return &WalletService{wallets: wallets}
}

type CreateWalletInput struct {
	Name           string
	Type           models.WalletType
	InitialBalance decimal.Decimal
}

type UpdateWalletInput struct {
	Name *string
	Type *models.WalletType
}

func (s *WalletService) Create(userID uint, input CreateWalletInput) (*models.Wallet, error) {
	wallet := &models.Wallet{
		UserID:         userID,
		Name:           input.Name,
		Type:           input.Type,
		Balance:        input.InitialBalance,
		InitialBalance: input.InitialBalance,
	}
	if err := s.wallets.Create(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// List returns the caller's wallets and the sum of their cached balances.
func (s *WalletService) List(userID uint) ([]models.Wallet, decimal.Decimal, error) {
	wallets, err := s.wallets.ListOwned(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	total := decimal.Zero
	for i := range wallets {
		total = total.Add(wallets[i].Balance)
	}
	return wallets, total, nil
}

func (s *WalletService) Detail(userID, walletID uint) (*models.Wallet, error) {
	wallet, err := s.wallets.FindOwned(userID, walletID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *WalletService) Update(userID, walletID uint, changes UpdateWalletInput) (*models.Wallet, error) {
	wallet, err := s.Detail(userID, walletID)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		wallet.Name = *changes.Name
	}
	if changes.Type != nil {
		wallet.Type = *changes.Type
	}

	if err := s.wallets.Save(wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Delete soft-deletes an empty wallet. A wallet with live transactions cannot
// go away, otherwise the conservation invariant stops being auditable.
func (s *WalletService) Delete(userID, walletID uint) error {
	wallet, err := s.Detail(userID, walletID)
	if err != nil {
		return err
	}

	inUse, err := s.wallets.HasTransactions(wallet.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInvalidOperation
	}

	return s.wallets.SoftDelete(wallet.ID)
}
