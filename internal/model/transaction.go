package model

import "time"

// PaymentTransaction is one row of the append-only transaction log written by
// the payment gateway's callback path; this service only reads it.
type PaymentTransaction struct {
	TransactionID string        `json:"transactionId" db:"transaction_id"`
	OrderID       string        `json:"orderId" db:"order_id"`
	UserID        int64         `json:"userId" db:"user_id"`
	Status        PaymentStatus `json:"status" db:"status"`
	FailureReason *string       `json:"failureReason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// PaymentStatusResult is the combined view answered by reconciliation: the
// order's own status and the transaction log's status, reported
// independently. The two may disagree until the gateway callback lands.
type PaymentStatusResult struct {
	OrderID       string        `json:"orderId"`
	TransactionID string        `json:"transactionId"`
	OrderStatus   OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
