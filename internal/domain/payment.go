package domain

import "time"

// CaptureStatus state of a provider order capture
type CaptureStatus string

const (
	CapturePending CaptureStatus = "pending"
	CaptureSuccess CaptureStatus = "success"
	CaptureFailed  CaptureStatus = "failed"
)

// PaymentOrder correlates the client, the backend and the payment provider for one checkout attempt
type PaymentOrder struct {
	ProviderOrderID string
	IdempotencyKey  string
	CaptureStatus   CaptureStatus
	TransactionID   string
	PaymentStatus   string
	Amount          float64
	CreatedAt       time.Time
	CapturedAt      *time.Time
	FailureReason   string
}

// IsFinal returns true once the order has been captured or abandoned
func (o *PaymentOrder) IsFinal() bool {
	return o.CaptureStatus == CaptureSuccess || o.CaptureStatus == CaptureFailed
}
