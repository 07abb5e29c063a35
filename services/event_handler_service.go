package services

import (
	"encoding/json"
	"sync"
	"time"

	"notelist-app/notelist/broker"
	"notelist-app/notelist/database"
	"notelist-app/notelist/models"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

const dispatchBatchSize = 100

type EventHandlerServiceInterface interface {
	Start()
	Stop()
	ProcessPendingEvents() int
}

// EventHandlerService publishes outbox events to the broker in the order
// they were recorded, marking each one dispatched once published.
type EventHandlerService struct {
	db       *database.Database
	producer broker.Producer
	interval time.Duration

	mu        sync.Mutex
	isRunning bool
	stop      chan struct{}
	done      chan struct{}
}

func NewEventHandlerService(db *database.Database, producer broker.Producer, interval time.Duration) EventHandlerServiceInterface {
	if interval <= 0 {
		interval = time.Second
	}
	return &EventHandlerService{
		db:       db,
		producer: producer,
		interval: interval,
	}
}

func (s *EventHandlerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return
	}
	s.isRunning = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop halts the dispatch loop and waits for an in-flight batch to finish.
func (s *EventHandlerService) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
}

func (s *EventHandlerService) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.ProcessPendingEvents()
		}
	}
}

// ProcessPendingEvents dispatches one batch of pending events and returns how
// many were published. It stops at the first failure so ordering is kept.
func (s *EventHandlerService) ProcessPendingEvents() int {
	var events []models.Event
	if err := s.db.DB.Where("dispatched = ?", false).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}}).
		Limit(dispatchBatchSize).
		Find(&events).Error; err != nil {
		zap.L().Error("failed to fetch pending events", zap.Error(err))
		return 0
	}

	if len(events) > 0 {
		zap.L().Debug("dispatching pending events", zap.Int("count", len(events)))
	}

	dispatched := 0
	for _, event := range events {
		if err := s.dispatchEvent(event); err != nil {
			zap.L().Warn("failed to dispatch event",
				zap.String("event_id", event.ID.String()),
				zap.String("event", event.Event),
				zap.Error(err))
			break
		}
		dispatched++
	}
	return dispatched
}

// eventEnvelope is the message body published for every event.
type eventEnvelope struct {
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	Entity    string          `json:"entity"`
	Operation string          `json:"operation"`
	ActorID   string          `json:"actor_id"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func (s *EventHandlerService) dispatchEvent(event models.Event) error {
	payload, err := json.Marshal(eventEnvelope{
		EventID:   event.ID.String(),
		Type:      event.Event,
		Entity:    event.Entity,
		Operation: event.Operation,
		ActorID:   event.ActorID,
		Timestamp: event.Timestamp,
		Data:      event.Data,
	})
	if err != nil {
		return err
	}

	if err := s.producer.PublishMessage(broker.SubjectForEntity(event.Entity), event.Event, payload); err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.DB.Model(&models.Event{}).Where("id = ?", event.ID).Updates(map[string]interface{}{
		"dispatched":    true,
		"dispatched_at": now,
		"status":        "completed",
	}).Error
}
