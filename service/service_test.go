package service

import (
	"testing"

	"finbook/database"
	"finbook/models"
	"finbook/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db           *gorm.DB
	wallets      *repository.WalletStore
	categories   *repository.CategoryStore
	transactions *repository.TransactionStore
	reconciler   *BalanceReconciler
	txnService   *TransactionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a single connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	wallets := repository.NewWalletStore(db)
	categories := repository.NewCategoryStore(db)
	transactions := repository.NewTransactionStore(db)
	reconciler := NewBalanceReconciler(db, wallets, transactions)

	return &testEnv{
		db:           db,
		wallets:      wallets,
		categories:   categories,
		transactions: transactions,
		reconciler:   reconciler,
		txnService:   NewTransactionService(reconciler, transactions, categories),
	}
}

func (env *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "hashed"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createWallet(t *testing.T, userID uint, balance string) *models.Wallet {
	t.Helper()
	opening := mustDecimal(t, balance)
	wallet := &models.Wallet{
		UserID:         userID,
		Name:           "Main Wallet",
		Type:           models.WalletTypeBank,
		Balance:        opening,
		InitialBalance: opening,
	}
	require.NoError(t, env.db.Create(wallet).Error)
	return wallet
}

func (env *testEnv) createCategory(t *testing.T, userID uint, name string, txnType models.TransactionType) *models.Category {
	t.Helper()
	category := &models.Category{UserID: userID, Name: name, Type: txnType}
	require.NoError(t, env.db.Create(category).Error)
	return category
}

func (env *testEnv) walletBalance(t *testing.T, walletID uint) decimal.Decimal {
	t.Helper()
	var wallet models.Wallet
	require.NoError(t, env.db.First(&wallet, walletID).Error)
	return wallet.Balance
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func requireBalance(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want := mustDecimal(t, expected)
	require.True(t, want.Equal(actual), "expected balance %s, got %s", want, actual)
}
