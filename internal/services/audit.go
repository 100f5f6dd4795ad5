package services

import (
	"context"
	"sync"
	"time"

	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/observability"
	"github.com/praiadomeio/app-ampm/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Audit actions
const (
	AuditActionCreate         = "CREATE"
	AuditActionUpdate         = "UPDATE"
	AuditActionDelete         = "DELETE"
	AuditActionLogin          = "LOGIN"
	AuditActionPasswordChange = "PASSWORD_CHANGE"
)

// Audit resources
const (
	AuditResourceMember  = "member"
	AuditResourcePayment = "payment"
	AuditResourceExpense = "expense"
	AuditResourceUser    = "user"
)

const (
	auditBatchSize     = 100
	auditFlushInterval = 100 * time.Millisecond
)

// AuditEvent is one entry of the audit log
type AuditEvent struct {
	Action     string            `bson:"action" json:"action"`
	Resource   string            `bson:"resource" json:"resource"`
	ResourceID string            `bson:"resource_id" json:"resource_id"`
	UserID     string            `bson:"user_id" json:"user_id"`
	Username   string            `bson:"username" json:"username"`
	RequestID  string            `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Timestamp  time.Time         `bson:"timestamp" json:"timestamp"`
	Metadata   map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// NewAuditEvent builds an event for actor acting on one record
func NewAuditEvent(ctx context.Context, actor models.User, action, resource, resourceID string) AuditEvent {
	return AuditEvent{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		UserID:     actor.ID,
		Username:   actor.Username,
		RequestID:  utils.RequestIDFromContext(ctx),
		Timestamp:  time.Now().UTC(),
	}
}

// AuditSink persists a batch of audit events
type AuditSink interface {
	WriteBatch(ctx context.Context, events []AuditEvent) error
}

// MongoAuditSink bulk-inserts audit events into a collection
type MongoAuditSink struct {
	collection *mongo.Collection
}

func NewMongoAuditSink(collection *mongo.Collection) *MongoAuditSink {
	return &MongoAuditSink{collection: collection}
}

// WriteBatch inserts the batch unordered
func (s *MongoAuditSink) WriteBatch(ctx context.Context, events []AuditEvent) error {
	operations := make([]mongo.WriteModel, 0, len(events))
	for _, event := range events {
		operations = append(operations, mongo.NewInsertOneModel().SetDocument(event))
	}
	_, err := s.collection.BulkWrite(ctx, operations, options.BulkWrite().SetOrdered(false))
	return err
}

// LogAuditSink writes audit events to the structured log
type LogAuditSink struct {
	logger *logging.SafeLogger
}

func NewLogAuditSink() *LogAuditSink {
	return &LogAuditSink{logger: logging.Logger.Named("audit")}
}

func (s *LogAuditSink) WriteBatch(_ context.Context, events []AuditEvent) error {
	for _, event := range events {
		s.logger.Info("audit event",
			zap.String("action", event.Action),
			zap.String("resource", event.Resource),
			zap.String("resource_id", event.ResourceID),
			zap.String("user_id", event.UserID),
			zap.String("request_id", event.RequestID))
	}
	return nil
}

// AuditWorker batches audit events in the background so that recording
// never blocks a request. A nil *AuditWorker discards events.
type AuditWorker struct {
	events  chan AuditEvent
	sink    AuditSink
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	stopped bool
	logger  *logging.SafeLogger
}

// NewAuditWorker creates a worker with the given queue size. Call Start to run it.
func NewAuditWorker(sink AuditSink, bufferSize int) *AuditWorker {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &AuditWorker{
		events: make(chan AuditEvent, bufferSize),
		sink:   sink,
		logger: logging.Logger.Named("audit"),
	}
}

// Start launches the batching goroutine
func (aw *AuditWorker) Start() {
	aw.wg.Add(1)
	go func() {
		defer aw.wg.Done()
		aw.process()
	}()

	aw.logger.Info("audit worker started", zap.Int("buffer_size", cap(aw.events)))
}

// Record queues an event, dropping it when the queue is full or the worker has stopped
func (aw *AuditWorker) Record(event AuditEvent) {
	if aw == nil {
		return
	}
	aw.mu.RLock()
	defer aw.mu.RUnlock()
	if aw.stopped {
		observability.AuditEventsDropped.Inc()
		aw.logger.Warn("audit worker stopped, dropping event",
			zap.String("action", event.Action),
			zap.String("resource_id", event.ResourceID))
		return
	}
	select {
	case aw.events <- event:
	default:
		observability.AuditEventsDropped.Inc()
		aw.logger.Warn("audit queue full, dropping event",
			zap.String("action", event.Action),
			zap.String("resource", event.Resource),
			zap.String("resource_id", event.ResourceID))
	}
}

// Stop flushes the queued events and waits for the worker to exit
func (aw *AuditWorker) Stop() {
	if aw == nil {
		return
	}
	aw.once.Do(func() {
		aw.mu.Lock()
		aw.stopped = true
		close(aw.events)
		aw.mu.Unlock()
		aw.wg.Wait()
	})
}

func (aw *AuditWorker) process() {
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	batch := make([]AuditEvent, 0, auditBatchSize)
	for {
		select {
		case event, ok := <-aw.events:
			if !ok {
				aw.flush(batch)
				return
			}
			batch = append(batch, event)
			if len(batch) >= auditBatchSize {
				aw.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				aw.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (aw *AuditWorker) flush(batch []AuditEvent) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := aw.sink.WriteBatch(ctx, batch); err != nil {
		aw.logger.Error("failed to write audit batch",
			zap.Int("batch_size", len(batch)),
			zap.Error(err))
		return
	}
	aw.logger.Debug("audit batch written", zap.Int("batch_size", len(batch)))
}
