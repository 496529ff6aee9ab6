package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Job types accepted on the trigger subscription.
const (
	JobTypeWarmup      = "warmup"
	JobTypeHealthCheck = "health_check"
)

// Trigger errors.
var (
	ErrMalformedMessage = errors.New("malformed job message")
	ErrUnknownJobType   = errors.New("unknown job type")
)

// JobMessage is the payload of a trigger message.
type JobMessage struct {
	JobType string `json:"job_type"`
	// JobID correlates the run in logs. One is generated when absent.
	JobID string `json:"job_id,omitempty"`
}

// Dispatcher runs the job a message asks for. It is separate from the
// Pub/Sub plumbing so it can be driven directly.
type Dispatcher struct {
	job    *WarmupJob
	logger zerolog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(job *WarmupJob, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{job: job, logger: logger}
}

// Dispatch decodes data and runs the requested job, returning the job id.
func (d *Dispatcher) Dispatch(ctx context.Context, data []byte) (string, error) {
	var msg JobMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedMessage, err.Error())
	}
	if msg.JobID == "" {
		msg.JobID = uuid.NewString()
	}

	logger := d.logger.With().Str("job_id", msg.JobID).Str("job_type", msg.JobType).Logger()

	switch msg.JobType {
	case JobTypeWarmup:
		result := d.job.Run(ctx)
		// A run where nothing came back live is retried by redelivery.
		if result.Outcome == OutcomeFailed {
			return msg.JobID, fmt.Errorf("warm-up failed: 0/%d cities live", result.Total)
		}
		return msg.JobID, nil
	case JobTypeHealthCheck:
		if err := d.job.HealthCheck(ctx); err != nil {
			return msg.JobID, err
		}
		logger.Debug().Msg("health check passed")
		return msg.JobID, nil
	default:
		return msg.JobID, fmt.Errorf("%w: %q", ErrUnknownJobType, msg.JobType)
	}
}

// PubSubHandler receives trigger messages from a Pub/Sub subscription.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	dispatcher       *Dispatcher
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	Dispatcher       *Dispatcher
	Logger           zerolog.Logger
}

// NewPubSubHandler creates a new Pub/Sub handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)

	// A warm-up is heavy; take a couple of messages at a time.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 2
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		dispatcher:       cfg.Dispatcher,
		logger:           cfg.Logger,
	}, nil
}

// Start processes messages until ctx ends.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	start := time.Now()

	logger := h.logger.With().
		Str("message_id", msg.ID).
		Str("publish_time", msg.PublishTime.Format(time.RFC3339)).
		Logger()

	jobID, err := h.dispatcher.Dispatch(ctx, msg.Data)
	switch {
	case err == nil:
		logger.Info().Str("job_id", jobID).Dur("duration", time.Since(start)).Msg("job completed")
		msg.Ack()
	case errors.Is(err, ErrUnknownJobType), errors.Is(err, ErrMalformedMessage):
		// Redelivery cannot fix these.
		logger.Warn().Err(err).Str("job_id", jobID).Msg("discarding message")
		msg.Ack()
	default:
		logger.Error().Err(err).Str("job_id", jobID).Msg("job failed")
		msg.Nack()
	}
}
