// Package apiclient is the Go counterpart of the browser dashboard's data
// layer: a thin typed client over the REST API plus a Snapshot store that
// reloads every collection wholesale after each mutation and derives the
// dashboard figures from the loaded data.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type Client struct {
	BaseURL    string // e.g. "http://localhost:3000/api"
	HTTPClient *http.Client

	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// Wire types, camelCase like the API.

type Product struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Fit       string  `json:"fit"`
	Wash      string  `json:"wash"`
	Sizes     string  `json:"sizes"`
	Stock     int     `json:"stock"`
	CostPrice float64 `json:"costPrice"`
	Price     float64 `json:"price"`
}

type ClientRecord struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Order struct {
	ID            uint    `json:"id"`
	ClientID      *uint   `json:"clientId"`
	ClientName    string  `json:"clientName"`
	ProductID     uint    `json:"productId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	PaymentRef    string  `json:"paymentRef,omitempty"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
}

type WashingBatch struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	SentDate  string `json:"sentDate"`
	Status    string `json:"status"`
}

type Transaction struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	OrderID     *uint   `json:"orderId"`
	Balance     float64 `json:"balance"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login stores the returned token on the client; every later call sends it
// as a bearer header.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var result struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &result)
	if err != nil {
		return err
	}
	c.token = result.Token
	return nil
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	return out, c.do(ctx, http.MethodGet, "/products", nil, &out)
}

func (c *Client) Clients(ctx context.Context) ([]ClientRecord, error) {
	var out []ClientRecord
	return out, c.do(ctx, http.MethodGet, "/clients", nil, &out)
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	return out, c.do(ctx, http.MethodGet, "/orders", nil, &out)
}

func (c *Client) WashingBatches(ctx context.Context) ([]WashingBatch, error) {
	var out []WashingBatch
	return out, c.do(ctx, http.MethodGet, "/washing", nil, &out)
}

func (c *Client) Ledger(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	return out, c.do(ctx, http.MethodGet, "/ledger", nil, &out)
}

type CreateOrderInput struct {
	Client    string `json:"client,omitempty"`
	ClientID  *uint  `json:"clientId,omitempty"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (Order, error) {
	var out Order
	return out, c.do(ctx, http.MethodPost, "/orders", in, &out)
}

func (c *Client) CompleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id),
		map[string]string{"status": "Completed"}, nil)
}

type VerifyPaymentInput struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentRef    string `json:"paymentRef,omitempty"`
	PaymentDate   string `json:"paymentDate,omitempty"`
}

func (c *Client) VerifyPayment(ctx context.Context, orderID uint, in VerifyPaymentInput) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/verify", orderID), in, nil)
}

type DispatchWashingInput struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	SentDate  string `json:"sentDate,omitempty"`
}

func (c *Client) DispatchWashing(ctx context.Context, in DispatchWashingInput) (WashingBatch, error) {
	var out WashingBatch
	return out, c.do(ctx, http.MethodPost, "/washing", in, &out)
}

func (c *Client) MarkDelivered(ctx context.Context, batchID uint) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/washing/%d", batchID),
		map[string]string{"status": "Delivered"}, nil)
}

type RecordWastageInput struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}

func (c *Client) RecordWastage(ctx context.Context, in RecordWastageInput) error {
	return c.do(ctx, http.MethodPost, "/wastage", in, nil)
}

type AddTransactionInput struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
}

func (c *Client) AddTransaction(ctx context.Context, in AddTransactionInput) (Transaction, error) {
	var out Transaction
	return out, c.do(ctx, http.MethodPost, "/ledger", in, &out)
}
