package service

import (
	"testing"
	"time"

	"finbook/models"

	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	wallet := env.createWallet(t, user.ID, "500")
	second := env.createWallet(t, user.ID, "100")
	salary := env.createCategory(t, user.ID, "Salary", models.TransactionTypeIncome)
	bills := env.createCategory(t, user.ID, "Bills", models.TransactionTypeExpense)
	dashboard := NewDashboardService(env.wallets, env.transactions)

	august := func(day int) time.Time {
		return time.Date(2025, 8, day, 12, 0, 0, 0, time.UTC)
	}

	_, err := env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: wallet.ID, CategoryID: salary.ID, Name: "Paycheck",
		Amount: mustDecimal(t, "3000"), Type: models.TransactionTypeIncome,
		TransactionDate: august(1),
	})
	require.NoError(t, err)
	_, err = env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: wallet.ID, CategoryID: bills.ID, Name: "Rent",
		Amount: mustDecimal(t, "1200"), Type: models.TransactionTypeExpense,
		TransactionDate: august(3),
	})
	require.NoError(t, err)
	_, err = env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: second.ID, CategoryID: bills.ID, Name: "Internet",
		Amount: mustDecimal(t, "49.99"), Type: models.TransactionTypeExpense,
		TransactionDate: august(10),
	})
	require.NoError(t, err)
	// outside the month, must not count
	_, err = env.reconciler.Create(user.ID, CreateTransactionInput{
		WalletID: wallet.ID, CategoryID: bills.ID, Name: "Old bill",
		Amount: mustDecimal(t, "77"), Type: models.TransactionTypeExpense,
		TransactionDate: time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	summary, err := dashboard.Summary(user.ID, august(15))
	require.NoError(t, err)

	require.Equal(t, "2025-08", summary.Month)
	// 500 + 100 + 3000 - 1200 - 49.99 - 77
	requireBalance(t, "2273.01", summary.TotalBalance)
	requireBalance(t, "3000", summary.TotalIncome)
	requireBalance(t, "1249.99", summary.TotalExpense)
	requireBalance(t, "1750.01", summary.Net)

	require.Len(t, summary.ByCategory, 2)
	byName := make(map[string]CategorySummary)
	for _, cs := range summary.ByCategory {
		byName[cs.Name] = cs
	}
	requireBalance(t, "3000", byName["Salary"].Total)
	require.Equal(t, 1, byName["Salary"].Count)
	requireBalance(t, "1249.99", byName["Bills"].Total)
	require.Equal(t, 2, byName["Bills"].Count)

	// newest first, month-scoped
	require.Len(t, summary.Recent, 3)
	require.Equal(t, "Internet", summary.Recent[0].Name)
	require.Equal(t, "Paycheck", summary.Recent[2].Name)
}
