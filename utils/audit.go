package utils

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InitializeBalanceAudit sets up the nightly wallet balance audit
func InitializeBalanceAudit(db *gorm.DB) {
	log.Println("[BALANCE-AUDIT] Initializing balance audit scheduler...")

	c := cron.New()

	// Run daily at 00:30
	c.AddFunc("30 0 * * *", func() {
		log.Println("[BALANCE-AUDIT] Running daily wallet balance audit...")
		RunBalanceAudit(db)
	})

	c.Start()
	log.Println("[BALANCE-AUDIT] Balance audit scheduler started - runs daily at 00:30")
}

// RunBalanceAudit recomputes every wallet's balance from its non-deleted
// ledger entries and logs any drift from the cached value. It never repairs
// anything on its own; drift here means a bug in the reconciler or manual
// database edits.
func RunBalanceAudit(db *gorm.DB) {
	type auditRow struct {
		ID             uint
		Name           string
		Balance        decimal.Decimal
		InitialBalance decimal.Decimal
		Ledger         decimal.Decimal
	}

	var rows []auditRow
	err := db.Raw(`
		SELECT w.id, w.name, w.balance, w.initial_balance,
		       COALESCE(SUM(CASE WHEN t.type = 'INCOME' THEN t.amount ELSE -t.amount END), 0) AS ledger
		FROM wallets w
		LEFT JOIN transactions t ON t.wallet_id = w.id AND t.deleted_at IS NULL
		WHERE w.deleted_at IS NULL
		GROUP BY w.id, w.name, w.balance, w.initial_balance`).
		Scan(&rows).Error
	if err != nil {
		log.Printf("[BALANCE-AUDIT] Audit query failed: %v", err)
		return
	}

	drifted := 0
	for _, row := range rows {
		expected := row.InitialBalance.Add(row.Ledger)
		if !expected.Equal(row.Balance) {
			drifted++
			log.Printf("[BALANCE-AUDIT] Wallet %d (%s): cached balance %s, ledger says %s (drift %s)",
				row.ID, row.Name, row.Balance, expected, row.Balance.Sub(expected))
		}
	}

	if drifted == 0 {
		log.Printf("[BALANCE-AUDIT] %d wallets audited, no drift", len(rows))
	} else {
		log.Printf("[BALANCE-AUDIT] %d wallets audited, %d with drift", len(rows), drifted)
	}
}
