// Package views derives the dashboard figures from full collection
// snapshots. Everything here is pure: computed on demand, never persisted.
package views

import (
	"sort"

	"spy-garments-backend/internal/models"
)

const (
	UnknownClient  = "Unknown Client"
	UnknownProduct = "Unknown Product"
)

type InventorySummary struct {
	TotalBundles   int     `json:"totalBundles"`
	LowStockCount  int     `json:"lowStockCount"`
	InventoryValue float64 `json:"inventoryValue"`
	Receivables    float64 `json:"receivables"`
}

func Inventory(products []models.Product, orders []models.Order) InventorySummary {
	var s InventorySummary
	for _, p := range products {
		s.TotalBundles += p.Stock
		s.InventoryValue += float64(p.Stock) * p.Price
		if p.Stock < models.LowStockThreshold {
			s.LowStockCount++
		}
	}
	for _, o := range orders {
		if o.PaymentStatus == models.PaymentStatusUnpaid {
			s.Receivables += o.Total
		}
	}
	return s
}

// LowStock returns the products under the fixed threshold.
func LowStock(products []models.Product) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.Stock < models.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

type AccountsSummary struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Wastage  float64 `json:"wastage"`
	Profit   float64 `json:"profit"`
}

func Accounts(txns []models.LedgerTransaction) AccountsSummary {
	var s AccountsSummary
	for _, t := range txns {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.Revenue += t.Amount
		case models.TransactionTypeExpense:
			s.Expenses += t.Amount
		case models.TransactionTypeWastage:
			s.Wastage += t.Amount
		}
	}
	s.Profit = s.Revenue - s.Expenses - s.Wastage
	return s
}

type BalancedTransaction struct {
	models.LedgerTransaction
	Balance float64
}

// AnnotateBalances returns the transactions newest-first with a running
// balance per row. The balance accumulates oldest-to-newest (income adds,
// expense and wastage subtract) and the annotated list is then reversed back
// for display, so the sequence is monotonic only along chronological order.
func AnnotateBalances(txns []models.LedgerTransaction) []BalancedTransaction {
	chronological := make([]models.LedgerTransaction, len(txns))
	copy(chronological, txns)
	sort.Slice(chronological, func(i, j int) bool {
		if !chronological[i].Date.Equal(chronological[j].Date) {
			return chronological[i].Date.Before(chronological[j].Date)
		}
		return chronological[i].ID < chronological[j].ID
	})

	out := make([]BalancedTransaction, len(chronological))
	var balance float64
	for i, t := range chronological {
		if t.Type == models.TransactionTypeIncome {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
		// fill back-to-front so the result comes out newest-first
		out[len(out)-1-i] = BalancedTransaction{LedgerTransaction: t, Balance: balance}
	}
	return out
}

type ClientStat struct {
	ClientID    uint    `json:"clientId"`
	Name        string  `json:"name"`
	OrderCount  int     `json:"orderCount"`
	TotalValue  float64 `json:"totalValue"`
	Outstanding float64 `json:"outstanding"`
}

func ClientStats(clients []models.Client, orders []models.Order) []ClientStat {
	stats := make([]ClientStat, 0, len(clients))
	for _, c := range clients {
		stat := ClientStat{ClientID: c.ID, Name: c.Name}
		for _, o := range orders {
			if o.ClientID == nil || *o.ClientID != c.ID {
				continue
			}
			stat.OrderCount++
			stat.TotalValue += o.Total
			if o.PaymentStatus == models.PaymentStatusUnpaid {
				stat.Outstanding += o.Total
			}
		}
		stats = append(stats, stat)
	}
	return stats
}

func ClientName(clients []models.Client, id *uint) string {
	if id != nil {
		for _, c := range clients {
			if c.ID == *id {
				return c.Name
			}
		}
	}
	return UnknownClient
}

func ProductName(products []models.Product, id uint) string {
	for _, p := range products {
		if p.ID == id {
			return p.Name
		}
	}
	return UnknownProduct
}

type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// CategoryDistribution sums stock per category over the fixed category set.
// Products outside the set are not counted.
func CategoryDistribution(products []models.Product) ChartData {
	data := ChartData{
		Labels: models.ProductCategories,
		Values: make([]int, len(models.ProductCategories)),
	}
	index := make(map[string]int, len(data.Labels))
	for i, label := range data.Labels {
		index[label] = i
	}
	for _, p := range products {
		if i, ok := index[p.Category]; ok {
			data.Values[i] += p.Stock
		}
	}
	return data
}

// OrderStatusCounts: anything not Completed counts as pending.
func OrderStatusCounts(orders []models.Order) (pending, completed int) {
	for _, o := range orders {
		if o.Status == models.OrderStatusCompleted {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
