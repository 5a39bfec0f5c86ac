package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money left or entered the account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// TransactionSource records how a transaction entered the system.
// It is set at creation and never changes afterwards.
type TransactionSource string

const (
	SourceSMS    TransactionSource = "SMS"
	SourceManual TransactionSource = "MANUAL"
)

// CategoryUncategorized is the category assigned to every SMS-sourced record.
const CategoryUncategorized = "Uncategorized"

// Transaction is the sole persisted entity: one financial movement, either
// extracted from a bank SMS or entered by the user.
type Transaction struct {
	ID          string            `json:"id"`          // Primary Key; content hash for SMS records, UUID for manual ones
	Amount      decimal.Decimal   `json:"amount"`      // Non-negative magnitude
	Type        TransactionType   `json:"type"`        // DEBIT or CREDIT
	Date        time.Time         `json:"date"`        // When the transaction occurred (best effort for SMS records)
	Bank        string            `json:"bank"`        // Originating sender/bank identifier, may be empty
	Description string            `json:"description"` // Truncated SMS body, or user notes
	Category    string            `json:"category"`    // "Uncategorized" for SMS records
	Source      TransactionSource `json:"source"`      // SMS or MANUAL, immutable post-creation
}

// MonthKey returns the local calendar year-month of t, e.g. "2025-01".
// The instant is normalized to the local zone first so records bucket the same
// way regardless of the zone they were scanned or constructed in, and the
// month filter agrees with itself across a reload.
func MonthKey(t time.Time) string {
	return t.In(time.Local).Format("2006-01")
}
