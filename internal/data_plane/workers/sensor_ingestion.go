package workers

import (
	"context"
	"log/slog"
	"smokeguard-server/internal/control_plane/domain"
	"smokeguard-server/internal/control_plane/usecases"
	"smokeguard-server/internal/data_plane/dto"
	"smokeguard-server/internal/infra/async"
	"smokeguard-server/internal/infra/mqtt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeProcessed = "processed"
	OutcomeDropped   = "dropped"
	OutcomeFailed    = "failed"

	_defaultHandlerTimeout = 30 * time.Second

	qos byte = 0
)

var _ingestedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "smokeguard_ingested_messages_total",
	Help: "Device messages handled, by kind and outcome.",
}, []string{"kind", "outcome"})

type Topics struct {
	Discovery string
	RoomData  string
	History   string
	Alerts    string
	Status    string
}

func DefaultTopics() Topics {
	return Topics{
		Discovery: "smokeguard/sensor/discovery",
		RoomData:  "smokeguard/room/data",
		History:   "smokeguard/room/history",
		Alerts:    "smokeguard/room/alerts",
		Status:    "smokeguard/sensor/status",
	}
}

func (t Topics) kinds() map[string]dto.Kind {
	return map[string]dto.Kind{
		t.Discovery: dto.KindDiscovery,
		t.RoomData:  dto.KindRoomData,
		t.History:   dto.KindHistory,
		t.Alerts:    dto.KindAlert,
		t.Status:    dto.KindStatus,
	}
}

func NewSensorIngestionWorker(service usecases.IngestionService, topics Topics) *SensorIngestionWorker {
	return &SensorIngestionWorker{
		service: service,
		topics:  topics,
		kinds:   topics.kinds(),
		timeout: _defaultHandlerTimeout,
		stop:    make(chan struct{}),
	}
}

var _ async.Worker = &SensorIngestionWorker{}

// SensorIngestionWorker turns device messages into IngestionService calls.
// It handles one message at a time, in delivery order.
type SensorIngestionWorker struct {
	service  usecases.IngestionService
	topics   Topics
	kinds    map[string]dto.Kind
	timeout  time.Duration
	stopped  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// Subscriptions lists the topics the worker consumes. The MQTT supervisor
// subscribes them again on every new session.
func (w *SensorIngestionWorker) Subscriptions() []mqtt.Subscription {
	topics := []string{
		w.topics.Discovery,
		w.topics.RoomData,
		w.topics.History,
		w.topics.Alerts,
		w.topics.Status,
	}

	subscriptions := make([]mqtt.Subscription, len(topics))
	for i, topic := range topics {
		subscriptions[i] = mqtt.Subscription{
			Topic:   topic,
			QoS:     qos,
			Handler: w.messageHandler,
		}
	}

	return subscriptions
}

func (w *SensorIngestionWorker) Run(ctx context.Context, done func()) {
	slog.Debug("sensor ingestion worker started")
	defer done()

	select {
	case <-ctx.Done():
		slog.Warn("sensor ingestion worker cancelled")
	case <-w.stop:
	}

	w.stopped.Store(true)
}

func (w *SensorIngestionWorker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}

func (w *SensorIngestionWorker) messageHandler(_ mqtt.Client, msg mqtt.Message) {
	kind, known := w.kinds[msg.Topic()]
	if !known {
		slog.Warn("message on unexpected topic", slog.String("topic", msg.Topic()))
		return
	}

	if w.stopped.Load() {
		_ingestedMessages.WithLabelValues(string(kind), OutcomeDropped).Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	outcome := w.Process(ctx, kind, msg.Payload())
	_ingestedMessages.WithLabelValues(string(kind), outcome).Inc()
}

// Process decodes and applies one payload and reports the outcome.
func (w *SensorIngestionWorker) Process(ctx context.Context, kind dto.Kind, payload []byte) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic while handling message",
				slog.String("kind", string(kind)),
				slog.Any("panic", r))
			outcome = OutcomeFailed
		}
	}()

	message, err := dto.Decode(kind, payload)
	if err != nil {
		slog.Warn("dropping message", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		return OutcomeDropped
	}

	if err := message.Validate(); err != nil {
		slog.Warn("dropping message", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		return OutcomeDropped
	}

	if err := w.dispatch(ctx, message); err != nil {
		slog.Error("handling message", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		return OutcomeFailed
	}

	return OutcomeProcessed
}

func (w *SensorIngestionWorker) dispatch(ctx context.Context, message dto.Message) error {
	switch m := message.(type) {
	case dto.DiscoveryMessage:
		return w.service.Discover(ctx, domain.ID(m.SensorID))
	case dto.RoomDataMessage:
		return w.service.RecordRoomReading(ctx, usecases.RoomReading{
			SensorID: domain.ID(m.SensorID),
			Room:     m.Room,
			Readings: toReadings(m.Readings),
			Status:   m.Status,
			Image:    m.Image,
		})
	case dto.HistoryMessage:
		return w.service.RecordHistory(ctx, usecases.HistoryRecord{
			SensorID:   toID(m.SensorID),
			Room:       m.Room,
			Readings:   toReadings(m.Readings),
			Status:     m.Status,
			Image:      m.Image,
			ImageURL:   m.ImageURL,
			Attributes: m.Extra,
		})
	case dto.AlertMessage:
		return w.service.RaiseAlert(ctx, usecases.AlertReport{
			SensorID: toID(m.SensorID),
			Room:     m.Room,
			Type:     m.Status,
			Readings: toReadings(m.Readings),
			Image:    m.Image,
		})
	case dto.StatusMessage:
		return w.service.UpdateStatus(ctx, domain.ID(m.SensorID), domain.ConnectivityStatus(m.Status))
	default:
		slog.Warn("no handler for message", slog.String("kind", string(message.Kind())))
		return nil
	}
}

func toReadings(r dto.Readings) domain.Readings {
	return domain.Readings{
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		PM25:        r.PM25,
		VOC:         r.VOC,
		NOx:         r.NOx,
	}
}

func toID(value *string) *domain.ID {
	if value == nil {
		return nil
	}

	id := domain.ID(*value)
	return &id
}
