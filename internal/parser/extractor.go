package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
)

const maxDescriptionLen = 200

var (
	creditPattern  = regexp.MustCompile(`(?i)credit(ed)?|deposit`)
	debitedPattern = regexp.MustCompile(`(?i)debited`)
	debitPattern   = regexp.MustCompile(`(?i)debit(ed)?|withdrawn|spent|purchase|is used`)

	// day/month/year with / or - separators and a 2-4 digit year,
	// e.g. 05-11-2025 or 5/11/25.
	datePattern = regexp.MustCompile(`([0-9]{1,2})[/\-]([0-9]{1,2})[/\-]([0-9]{2,4})`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Extractor builds candidate transactions out of messages already classified
// as financial. The clock is injectable so the current-instant fallbacks are
// testable.
type Extractor struct {
	now func() time.Time
}

// NewExtractor returns an Extractor using the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorWithClock returns an Extractor with a custom clock.
func NewExtractorWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Extract produces a complete SMS-sourced transaction from the message, or an
// error when no usable amount is present. No partial record is ever returned:
// a failed extraction means the message should be dropped.
func (e *Extractor) Extract(msg domain.SMSMessage) (domain.Transaction, error) {
	amount, err := ExtractAmount(msg.Body)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("extracting amount from sms: %w", err)
	}

	// Credit evidence wins only when the body does not also say "debited".
	// Unmatched text falls through to debit: silently labelling it a debit is
	// a deliberate policy, not an oversight.
	var txnType domain.TransactionType
	switch {
	case creditPattern.MatchString(msg.Body) && !debitedPattern.MatchString(msg.Body):
		txnType = domain.Credit
	case debitPattern.MatchString(msg.Body):
		txnType = domain.Debit
	default:
		txnType = domain.Debit
	}

	date := e.extractDate(msg.Body)

	// Truncate by runes, not bytes: cutting a multi-byte rune in half would
	// produce invalid UTF-8 that the relation rejects on save.
	description := msg.Body
	if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen])
	}

	txn := domain.Transaction{
		Amount:      amount,
		Type:        txnType,
		Date:        date,
		Bank:        msg.Sender,
		Description: description,
		Category:    domain.CategoryUncategorized,
		Source:      domain.SourceSMS,
	}
	txn.ID = contentID(msg.Sender, txn)
	return txn, nil
}

// extractDate finds the first date-shaped token in the body and parses it
// day-first. Out-of-order or delayed delivery can still attach the wrong date
// to a record; when nothing parses, the current processing instant is used.
func (e *Extractor) extractDate(body string) time.Time {
	m := datePattern.FindStringSubmatch(body)
	if m == nil {
		return e.now()
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return e.now()
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// contentID derives the transaction key from a stable hash of the sender, the
// inferred amount and date, and the normalized body. Redelivery of the same
// message therefore produces the same key and is absorbed by the store's
// upsert instead of creating a duplicate row.
func contentID(sender string, txn domain.Transaction) string {
	normalized := strings.ToLower(strings.TrimSpace(txn.Description))
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", sender, txn.Amount.String(), txn.Date.UTC().Format(time.RFC3339), normalized)
	return hex.EncodeToString(h.Sum(nil))
}
