package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
	"github.com/paisatrack/paisa_tracker_app/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBankCodes = []string{"HDFCBK", "ICICI", "SBI"}
	testKeywords  = []string{"debited", "credited", "withdrawn", "purchase", "transaction of", "available balance", "avl bal"}
)

// recordingStore captures Add calls; the other writer methods are unused by ingestion.
type recordingStore struct {
	mu    sync.Mutex
	added []domain.Transaction
	err   error
}

func (r *recordingStore) Add(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.added = append(r.added, txn)
	return nil
}
func (r *recordingStore) Load(ctx context.Context) error { return nil }

func (r *recordingStore) Remove(ctx context.Context, id string) error { return nil }

func (r *recordingStore) Edit(ctx context.Context, txn domain.Transaction) error { return nil }

func (r *recordingStore) snapshot() []domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Transaction, len(r.added))
	copy(out, r.added)
	return out
}

func newTestIngestion(store *recordingStore, bufferSize int) *IngestionService {
	classifier := parser.NewClassifier(testBankCodes, testKeywords)
	extractor := parser.NewExtractorWithClock(func() time.Time {
		return time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIngestionService(classifier, extractor, store, bufferSize, logger)
}

func TestIngestionService_ProcessStoresFinancialMessage(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 4)

	svc.process(context.Background(), domain.SMSMessage{
		Sender: "HDFCBK",
		Body:   "Rs.500.00 debited from A/c on 05-11-2025",
	})

	added := store.snapshot()
	require.Len(t, added, 1)
	assert.Equal(t, "500.00", added[0].Amount.String())
	assert.Equal(t, domain.Debit, added[0].Type)
	assert.Equal(t, "HDFCBK", added[0].Bank)
	assert.Equal(t, domain.SourceSMS, added[0].Source)
}

func TestIngestionService_ProcessDropsNonFinancialMessage(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 4)

	svc.process(context.Background(), domain.SMSMessage{Sender: "FRIEND", Body: "See you at 6pm"})

	assert.Empty(t, store.snapshot())
}

func TestIngestionService_ProcessDropsUnextractableMessage(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 4)

	// Financial-looking (keyword match) but no parseable amount.
	svc.process(context.Background(), domain.SMSMessage{Sender: "RANDOM", Body: "your account was debited"})

	assert.Empty(t, store.snapshot())
}

func TestIngestionService_ProcessSwallowsStoreError(t *testing.T) {
	store := &recordingStore{err: errors.New("storage unavailable")}
	svc := newTestIngestion(store, 4)

	// Must not panic or retry; the message is lost by design.
	svc.process(context.Background(), domain.SMSMessage{
		Sender: "HDFCBK",
		Body:   "Rs.500.00 debited",
	})

	assert.Empty(t, store.snapshot())
}

func TestIngestionService_EnqueueAndConsume(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	defer svc.Stop()

	require.NoError(t, svc.Enqueue(ctx, domain.SMSMessage{
		Sender: "ICICI",
		Body:   "Rs.1,234.56 debited on 01/02/2025",
	}))

	require.Eventually(t, func() bool {
		return len(store.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "1234.56", store.snapshot()[0].Amount.String())
}

func TestIngestionService_EnqueueDropsWhenBufferFull(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 1) // consumer never started

	msg := domain.SMSMessage{Sender: "SBI", Body: "Rs.100 debited"}
	require.NoError(t, svc.Enqueue(context.Background(), msg))
	// Buffer full: dropped silently, not an error.
	require.NoError(t, svc.Enqueue(context.Background(), msg))
	assert.Len(t, svc.queue, 1)
}

func TestIngestionService_EnqueueAfterStopFails(t *testing.T) {
	store := &recordingStore{}
	svc := newTestIngestion(store, 1)

	svc.Start(context.Background())
	svc.Stop()

	err := svc.Enqueue(context.Background(), domain.SMSMessage{Sender: "SBI", Body: "Rs.100 debited"})
	assert.Error(t, err)
}
