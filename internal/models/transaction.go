package models

import "time"

// TransactionStatus is the settlement outcome of a payment.
type TransactionStatus string

const (
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
	TransactionRefunded  TransactionStatus = "refunded"
)

// Transaction is one entry in the append-only payment log. The log is
// ordered newest-first; UserEmail is a loose reference, not enforced.
type Transaction struct {
	ID        string            `json:"id"`
	UserEmail string            `json:"userEmail"`
	Amount    float64           `json:"amount"`
	Date      time.Time         `json:"date"`
	Status    TransactionStatus `json:"status"`
	Plan      SubscriptionPlan  `json:"plan"`
}

// KPIReport aggregates the admin dashboard numbers.
type KPIReport struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	ActiveUsers    int     `json:"activeUsers"`
	TotalUsers     int     `json:"totalUsers"`
	ConversionRate string  `json:"conversionRate"`
}
