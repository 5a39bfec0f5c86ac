package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/paisatrack/paisa_tracker_app/internal/core/domain"
	portssvc "github.com/paisatrack/paisa_tracker_app/internal/core/ports/services"
	"github.com/paisatrack/paisa_tracker_app/internal/parser"
)

// IngestionService consumes inbound SMS events from a bounded queue and turns
// qualifying messages into stored transactions. A single consumer goroutine
// processes events sequentially, which keeps cache updates ordered relative to
// each other.
//
// Classification misses are silent; extraction failures are logged and the
// message is discarded with no persistence attempted. A persistence failure is
// logged without retry, so an ingested transaction can be lost on a transient
// storage fault.
type IngestionService struct {
	classifier *parser.Classifier
	extractor  *parser.Extractor
	store      portssvc.TransactionWriterSvc
	logger     *slog.Logger

	queue chan domain.SMSMessage
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once
}

// NewIngestionService creates the coordinator. bufferSize bounds how many
// undigested messages may be pending before new ones are dropped.
func NewIngestionService(
	classifier *parser.Classifier,
	extractor *parser.Extractor,
	store portssvc.TransactionWriterSvc,
	bufferSize int,
	logger *slog.Logger,
) *IngestionService {
	return &IngestionService{
		classifier: classifier,
		extractor:  extractor,
		store:      store,
		logger:     logger.With(slog.String("component", "ingestion")),
		queue:      make(chan domain.SMSMessage, bufferSize),
		done:       make(chan struct{}),
	}
}

// Enqueue hands a message to the queue. A full buffer drops the message with a
// warning; there is no durable retry.
func (s *IngestionService) Enqueue(ctx context.Context, msg domain.SMSMessage) error {
	select {
	case <-s.done:
		return errors.New("ingestion service is stopped")
	default:
	}

	select {
	case s.queue <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.logger.Warn("Ingestion queue full, dropping message", slog.String("sender", msg.Sender))
		return nil
	}
}

// Start launches the consumer goroutine. It returns immediately.
func (s *IngestionService) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case msg := <-s.queue:
				s.process(ctx, msg)
			}
		}
	}()
}

// Stop signals the consumer to exit and waits for it.
func (s *IngestionService) Stop() {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
}

func (s *IngestionService) process(ctx context.Context, msg domain.SMSMessage) {
	if !s.classifier.IsBankSMS(msg.Sender, msg.Body) {
		// Non-financial messages are dropped without side effects.
		return
	}

	txn, err := s.extractor.Extract(msg)
	if err != nil {
		s.logger.Warn("Failed to extract transaction from sms",
			slog.String("sender", msg.Sender),
			slog.String("error", err.Error()))
		return
	}

	if err := s.store.Add(ctx, txn); err != nil {
		s.logger.Error("Failed to persist ingested transaction",
			slog.String("transaction_id", txn.ID),
			slog.String("error", err.Error()))
		return
	}

	s.logger.Info("Ingested transaction from sms",
		slog.String("transaction_id", txn.ID),
		slog.String("bank", txn.Bank),
		slog.String("type", string(txn.Type)))
}

var _ portssvc.IngestionSvc = (*IngestionService)(nil)
