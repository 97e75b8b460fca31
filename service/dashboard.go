package service

import (
	"time"

	"finbook/models"
	"finbook/repository"

	"github.com/shopspring/decimal"
)

// CategorySummary aggregates one category's activity inside the period.
type CategorySummary struct {
	CategoryID uint                   `json:"categoryId"`
	Name       string                 `json:"name"`
	Type       models.TransactionType `json:"type"`
	Total      decimal.Decimal        `json:"total"`
	Count      int                    `json:"count"`
}

// DashboardSummary is the read-path aggregation for one month.
type DashboardSummary struct {
	Month        string               `json:"month"`
	TotalBalance decimal.Decimal      `json:"totalBalance"`
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	Net          decimal.Decimal      `json:"net"`
	ByCategory   []CategorySummary    `json:"byCategory"`
	Recent       []models.Transaction `json:"recentTransactions"`
}

// DashboardService is a pure read path over wallets and transactions. It never
// mutates balances and works only on non-deleted rows.
type DashboardService struct {
	wallets *repository.WalletStore
	txns    *repository.TransactionStore
}

func NewDashboardService(wallets *repository.WalletStore, txns *repository.TransactionStore) *DashboardService {
	return &DashboardService{wallets: wallets, txns: txns}
}

const recentLimit = 5

// Summary aggregates the caller's activity for the month containing ref.
func (s *DashboardService) Summary(userID uint, ref time.Time) (*DashboardSummary, error) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0)

	wallets, err := s.wallets.ListOwned(userID)
	if err != nil {
		return nil, err
	}

	totalBalance := decimal.Zero
	for i := range wallets {
		totalBalance = totalBalance.Add(wallets[i].Balance)
	}

	txns, err := s.txns.ListRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Month:        start.Format("2006-01"),
		TotalBalance: totalBalance,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	byCategory := make(map[uint]*CategorySummary)
	for i := range txns {
		t := &txns[i]

		if t.Type == models.TransactionTypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}

		cs, ok := byCategory[t.CategoryID]
		if !ok {
			cs = &CategorySummary{
				CategoryID: t.CategoryID,
				Name:       t.Category.Name,
				Type:       t.Type,
				Total:      decimal.Zero,
			}
			byCategory[t.CategoryID] = cs
		}
		cs.Total = cs.Total.Add(t.Amount)
		cs.Count++
	}

	summary.ByCategory = make([]CategorySummary, 0, len(byCategory))
	for _, cs := range byCategory {
		summary.ByCategory = append(summary.ByCategory, *cs)
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)

	// newest first for the recent list
	recent := make([]models.Transaction, 0, recentLimit)
	for i := len(txns) - 1; i >= 0 && len(recent) < recentLimit; i-- {
		recent = append(recent, txns[i])
	}
	summary.Recent = recent

	return summary, nil
}
