package service

import (
	"testing"
	"time"

	"finbook/models"

	"github.com/stretchr/testify/require"
)

func TestWalletCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	walletService := NewWalletService(env.wallets)

	_, err := walletService.Create(user.ID, CreateWalletInput{
		Name:           "Savings",
		Type:           models.WalletTypeSavings,
		InitialBalance: mustDecimal(t, "2500.50"),
	})
	require.NoError(t, err)
	_, err = walletService.Create(user.ID, CreateWalletInput{
		Name: "Pocket",
		Type: models.WalletTypeCash,
	})
	require.NoError(t, err)

	wallets, total, err := walletService.List(user.ID)
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	requireBalance(t, "2500.50", total)

	byName := make(map[string]models.Wallet)
	for _, w := range wallets {
		byName[w.Name] = w
	}
	requireBalance(t, "2500.50", byName["Savings"].InitialBalance)
	requireBalance(t, "2500.50", byName["Savings"].Balance)
	requireBalance(t, "0", byName["Pocket"].Balance)
}

func TestWalletUpdateAndOwnership(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	other := env.createUser(t, "b@example.com")
	wallet := env.createWallet(t, user.ID, "100")
	walletService := NewWalletService(env.wallets)

	name := "Renamed"
	walletType := models.WalletTypeEWallet
	updated, err := walletService.Update(user.ID, wallet.ID, UpdateWalletInput{Name: &name, Type: &walletType})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, models.WalletTypeEWallet, updated.Type)

	_, err = walletService.Update(other.ID, wallet.ID, UpdateWalletInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWalletDeleteRequiresEmptyLedger(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	wallet := env.createWallet(t, user.ID, "100")
	expense := env.createCategory(t, user.ID, "Bills", models.TransactionTypeExpense)
	walletService := NewWalletService(env.wallets)

	txn, err := env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: wallet.ID, CategoryID: expense.ID, Name: "Entry",
		Amount: mustDecimal(t, "10"), Type: models.TransactionTypeExpense,
		TransactionDate: time.Now(),
	})
	require.NoError(t, err)

	require.ErrorIs(t, walletService.Delete(user.ID, wallet.ID), ErrInvalidOperation)

	// deleting the last transaction frees the wallet up
	require.NoError(t, env.reconciler.Delete(user.ID, txn.ID))
	require.NoError(t, walletService.Delete(user.ID, wallet.ID))

	_, err = walletService.Detail(user.ID, wallet.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCategorySeedAndGuards(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	categoryService := NewCategoryService(env.categories)

	require.NoError(t, env.categories.Seed(user.ID))

	all, err := categoryService.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 7)

	incomes, err := categoryService.List(user.ID, models.TransactionTypeIncome)
	require.NoError(t, err)
	require.Len(t, incomes, 2)

	wallet := env.createWallet(t, user.ID, "100")
	used := incomes[0]
	_, err = env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: wallet.ID, CategoryID: used.ID, Name: "Entry",
		Amount: mustDecimal(t, "10"), Type: models.TransactionTypeIncome,
		TransactionDate: time.Now(),
	})
	require.NoError(t, err)

	// a referenced category cannot flip type or disappear
	expenseType := models.TransactionTypeExpense
	_, err = categoryService.Update(user.ID, used.ID, UpdateCategoryInput{Type: &expenseType})
	require.ErrorIs(t, err, ErrInvalidOperation)
	require.ErrorIs(t, categoryService.Delete(user.ID, used.ID), ErrInvalidOperation)

	// renaming is always fine
	name := "Wages"
	renamed, err := categoryService.Update(user.ID, used.ID, UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Wages", renamed.Name)

	// an unused category can go
	require.NoError(t, categoryService.Delete(user.ID, incomes[1].ID))
	all, err = categoryService.List(user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 6)
}
