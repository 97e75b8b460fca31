package utils

import (
	"strings"
	"testing"
	"time"

	"finbook/database"
	"finbook/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func auditTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunBalanceAudit(t *testing.T) {
	db := auditTestDB(t)

	user := models.User{Name: "Test User", Email: "a@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	opening := decimal.RequireFromString("100.00")
	clean := models.Wallet{
		UserID: user.ID, Name: "Clean", Type: models.WalletTypeBank,
		Balance: decimal.RequireFromString("150.00"), InitialBalance: opening,
	}
	require.NoError(t, db.Create(&clean).Error)

	drifted := models.Wallet{
		UserID: user.ID, Name: "Drifted", Type: models.WalletTypeCash,
		Balance: decimal.RequireFromString("999.00"), InitialBalance: opening,
	}
	require.NoError(t, db.Create(&drifted).Error)

	category := models.Category{UserID: user.ID, Name: "Salary", Type: models.TransactionTypeIncome}
	require.NoError(t, db.Create(&category).Error)

	for _, walletID := range []uint{clean.ID, drifted.ID} {
		txn := models.Transaction{
			UserID: user.ID, WalletID: walletID, CategoryID: category.ID,
			Reference: GenReference(), Name: "Entry",
			Amount: decimal.RequireFromString("50.00"), Type: models.TransactionTypeIncome,
			TransactionDate: time.Now(),
		}
		require.NoError(t, db.Create(&txn).Error)
	}

	// soft-deleted entries must not count towards the recomputed ledger
	gone := models.Transaction{
		UserID: user.ID, WalletID: clean.ID, CategoryID: category.ID,
		Reference: GenReference(), Name: "Gone",
		Amount: decimal.RequireFromString("9999.00"), Type: models.TransactionTypeIncome,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Delete(&gone).Error)

	// must not panic and must read every live wallet; drift is only logged
	RunBalanceAudit(db)
}

func TestGenReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenReference()
		require.True(t, strings.HasPrefix(ref, "TXN-"))
		require.Len(t, ref, 16)
		require.Equal(t, strings.ToUpper(ref), ref)
		require.False(t, seen[ref])
		seen[ref] = true
	}
}
