package apiclient

import (
	"context"
	"time"

	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"
)

// Snapshot holds an in-memory copy of all five collections. There is no
// partial refresh: Refresh reloads everything, which is how the dashboard
// bounds staleness after each mutation.
type Snapshot struct {
	api *Client

	Products       []Product
	Clients        []ClientRecord
	Orders         []Order
	WashingBatches []WashingBatch
	Ledger         []Transaction
}

func NewSnapshot(api *Client) *Snapshot {
	return &Snapshot{api: api}
}

// Refresh reloads all five collections wholesale.
func (s *Snapshot) Refresh(ctx context.Context) error {
	products, err := s.api.Products(ctx)
	if err != nil {
		return err
	}
	clientList, err := s.api.Clients(ctx)
	if err != nil {
		return err
	}
	orders, err := s.api.Orders(ctx)
	if err != nil {
		return err
	}
	batches, err := s.api.WashingBatches(ctx)
	if err != nil {
		return err
	}
	ledger, err := s.api.Ledger(ctx)
	if err != nil {
		return err
	}

	s.Products = products
	s.Clients = clientList
	s.Orders = orders
	s.WashingBatches = batches
	s.Ledger = ledger
	return nil
}

// Mutation wrappers: issue the write, then reload everything, exactly like
// the dashboard does after each form submit.

func (s *Snapshot) CreateOrder(ctx context.Context, in CreateOrderInput) error {
	if _, err := s.api.CreateOrder(ctx, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) CompleteOrder(ctx context.Context, id uint) error {
	if err := s.api.CompleteOrder(ctx, id); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) VerifyPayment(ctx context.Context, orderID uint, in VerifyPaymentInput) error {
	if err := s.api.VerifyPayment(ctx, orderID, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) DispatchWashing(ctx context.Context, in DispatchWashingInput) error {
	if _, err := s.api.DispatchWashing(ctx, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) MarkDelivered(ctx context.Context, batchID uint) error {
	if err := s.api.MarkDelivered(ctx, batchID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) RecordWastage(ctx context.Context, in RecordWastageInput) error {
	if err := s.api.RecordWastage(ctx, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Snapshot) AddTransaction(ctx context.Context, in AddTransactionInput) error {
	if _, err := s.api.AddTransaction(ctx, in); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func parseDay(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func (s *Snapshot) productModels() []models.Product {
	out := make([]models.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, models.Product{
			ID: p.ID, Name: p.Name, SKU: p.SKU, Category: p.Category,
			Fit: p.Fit, Wash: p.Wash, Sizes: p.Sizes,
			Stock: p.Stock, CostPrice: p.CostPrice, Price: p.Price,
		})
	}
	return out
}

func (s *Snapshot) clientModels() []models.Client {
	out := make([]models.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		out = append(out, models.Client{
			ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address,
		})
	}
	return out
}

func (s *Snapshot) orderModels() []models.Order {
	out := make([]models.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out = append(out, models.Order{
			ID: o.ID, ClientID: o.ClientID, ProductID: o.ProductID,
			Quantity: o.Quantity, Total: o.Total, Date: parseDay(o.Date),
			Status:        models.OrderStatus(o.Status),
			PaymentStatus: models.PaymentStatus(o.PaymentStatus),
		})
	}
	return out
}

func (s *Snapshot) ledgerModels() []models.LedgerTransaction {
	out := make([]models.LedgerTransaction, 0, len(s.Ledger))
	for _, t := range s.Ledger {
		out = append(out, models.LedgerTransaction{
			ID: t.ID, Type: models.TransactionType(t.Type), Category: t.Category,
			Amount: t.Amount, Description: t.Description,
			Date: parseDay(t.Date), OrderID: t.OrderID,
		})
	}
	return out
}

// Derived views, recomputed from the snapshot on every call.

func (s *Snapshot) InventorySummary() views.InventorySummary {
	return views.Inventory(s.productModels(), s.orderModels())
}

func (s *Snapshot) AccountsSummary() views.AccountsSummary {
	return views.Accounts(s.ledgerModels())
}

func (s *Snapshot) RunningBalances() []views.BalancedTransaction {
	return views.AnnotateBalances(s.ledgerModels())
}

func (s *Snapshot) ClientStats() []views.ClientStat {
	return views.ClientStats(s.clientModels(), s.orderModels())
}

func (s *Snapshot) LowStock() []Product {
	var low []Product
	for _, p := range s.Products {
		if p.Stock < models.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// ClientName resolves an order's client reference, labelling orphaned
// references "Unknown Client".
func (s *Snapshot) ClientName(id *uint) string {
	return views.ClientName(s.clientModels(), id)
}

func (s *Snapshot) ProductName(id uint) string {
	return views.ProductName(s.productModels(), id)
}
