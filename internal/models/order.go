package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Order represents an incoming order written by the checkout flow
type Order struct {
	ID             int         `json:"id" db:"id"`
	OrderNumber    string      `json:"order_number" db:"order_number"`
	SessionID      string      `json:"session_id" db:"session_id"`
	CustomerName   string      `json:"customer_name" db:"customer_name"`
	CustomerEmail  string      `json:"customer_email" db:"customer_email"`
	Subtotal       int         `json:"subtotal" db:"subtotal"` // in cents
	DiscountCode   string      `json:"discount_code" db:"discount_code"`
	DiscountAmount int         `json:"discount_amount" db:"discount_amount"` // in cents
	TotalAmount    int         `json:"total_amount" db:"total_amount"`       // in cents
	Status         OrderStatus `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderItem is a purchased line, snapshotted from the cart at placement time.
// Unlike cart rows, title and price are persisted here so later catalog edits
// do not rewrite placed orders.
type OrderItem struct {
	ID          int      `json:"id" db:"id"`
	OrderID     int      `json:"order_id" db:"order_id"`
	ItemType    ItemType `json:"item_type" db:"item_type"`
	ReferenceID int      `json:"reference_id" db:"reference_id"`
	Title       string   `json:"title" db:"title"`
	UnitPrice   int      `json:"unit_price" db:"unit_price"` // in cents
	Quantity    int      `json:"quantity" db:"quantity"`
}

// OrderCreateRequest represents the data needed to create a new order
type OrderCreateRequest struct {
	SessionID      string      `json:"session_id"`
	CustomerName   string      `json:"customer_name"`
	CustomerEmail  string      `json:"customer_email"`
	Subtotal       int         `json:"subtotal"`
	DiscountCode   string      `json:"discount_code"`
	DiscountAmount int         `json:"discount_amount"`
	TotalAmount    int         `json:"total_amount"`
	Status         OrderStatus `json:"status"`
}

var orderEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates order creation data
func (req *OrderCreateRequest) Validate() error {
	if strings.TrimSpace(req.SessionID) == "" {
		return errors.New("session id is required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return errors.New("customer name is required")
	}
	if !orderEmailRegex.MatchString(req.CustomerEmail) {
		return errors.New("customer email is invalid")
	}
	if req.Subtotal < 0 {
		return errors.New("subtotal cannot be negative")
	}
	if req.DiscountAmount < 0 {
		return errors.New("discount amount cannot be negative")
	}
	if req.TotalAmount < 0 {
		return errors.New("total amount cannot be negative")
	}
	if req.Status != OrderPending && req.Status != OrderCompleted && req.Status != OrderCancelled {
		return errors.New("invalid order status")
	}
	return nil
}

// GenerateOrderNumber generates an order number in the format ORD-YYYYMMDD-XXXXXX
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	// Generate a 6-digit random number using crypto/rand for better uniqueness
	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		timestamp := now.UnixNano()
		randomPart := timestamp % 1000000
		return fmt.Sprintf("ORD-%s-%06d", dateStr, randomPart)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}

// IsPending returns true if the order is pending
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// IsCompleted returns true if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == OrderCompleted
}
