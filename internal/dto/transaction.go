package dto

import (
	"time"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for a user-entered transaction.
// Source is not accepted from the client; manual records are always MANUAL.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"nonnegdecimal"`
	Type        string          `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Date        time.Time       `json:"date" binding:"required"`
	Bank        string          `json:"bank"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// UpdateTransactionRequest defines the payload for editing a transaction.
// ID comes from the path and Source is immutable, so neither appears here.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"nonnegdecimal"`
	Type        string          `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Date        time.Time       `json:"date" binding:"required"`
	Bank        string          `json:"bank"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// SMSRequest is the inbound message event posted by the delivery collaborator.
type SMSRequest struct {
	Sender string `json:"sender" binding:"required"`
	Body   string `json:"body" binding:"required"`
}

// ToDomainMessage converts the request to the domain message event.
func (r SMSRequest) ToDomainMessage() domain.SMSMessage {
	return domain.SMSMessage{Sender: r.Sender, Body: r.Body}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Bank        string          `json:"bank"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Source      string          `json:"source"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		Date:        txn.Date,
		Bank:        txn.Bank,
		Description: txn.Description,
		Category:    txn.Category,
		Source:      string(txn.Source),
	}
}

// ToTransactionResponses converts a slice of domain transactions to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToDomainTransaction builds a domain transaction from a create request.
func (r CreateTransactionRequest) ToDomainTransaction(id string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
		Date:        r.Date,
		Bank:        r.Bank,
		Description: r.Description,
		Category:    r.Category,
		Source:      domain.SourceManual,
	}
}

// ToDomainTransaction builds a domain transaction from an update request.
func (r UpdateTransactionRequest) ToDomainTransaction(id string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
		Date:        r.Date,
		Bank:        r.Bank,
		Description: r.Description,
		Category:    r.Category,
	}
}
