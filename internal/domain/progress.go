package domain

import "time"

// CheckoutProgress persisted snapshot that lets the wizard resume
// JSON layout matches the browser's checkoutProgress key: {step, formData, timestamp}
type CheckoutProgress struct {
	Step      CheckoutStep `json:"step"`
	FormData  GuestInfo    `json:"formData"`
	Timestamp time.Time    `json:"timestamp"`
}

// IsExpired returns true if the snapshot is older than ttl
func (p CheckoutProgress) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.Timestamp) >= ttl
}
