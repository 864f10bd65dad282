package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"leadtracker_backend/internal/events"
	"leadtracker_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeHotLead is the asynq task type for hot-lead notifications.
const TypeHotLead = "notify:hot_lead"

// HotLeadPayload is the task payload for a hot-lead notification.
type HotLeadPayload struct {
	LeadID      uuid.UUID `json:"leadId"`
	FullName    string    `json:"fullName"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	TotalScore  int       `json:"totalScore"`
}

// NewHotLeadTask builds the asynq task for a hot lead.
func NewHotLeadTask(payload HotLeadPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal hot lead payload: %w", err)
	}
	return asynq.NewTask(TypeHotLead, data, asynq.MaxRetry(3)), nil
}

// Enqueuer subscribes to lead events and enqueues notification tasks for
// hot leads. Enqueue failure is logged, never surfaced: notification is
// best effort and must not fail a submission.
type Enqueuer struct {
	client *asynq.Client
	log    *logger.Logger
}

// NewEnqueuer creates a notification enqueuer. client may be nil to
// disable notifications.
func NewEnqueuer(client *asynq.Client, log *logger.Logger) *Enqueuer {
	return &Enqueuer{client: client, log: log}
}

// Subscribe registers the enqueuer on the event bus.
func (e *Enqueuer) Subscribe(bus events.Bus) {
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(e.handleLeadCaptured))
}

func (e *Enqueuer) handleLeadCaptured(ctx context.Context, event events.Event) error {
	captured, ok := event.(events.LeadCaptured)
	if !ok || captured.Category != "hot" || e.client == nil {
		return nil
	}

	task, err := NewHotLeadTask(HotLeadPayload{
		LeadID:      captured.LeadID,
		FullName:    captured.FullName,
		CompanyName: captured.CompanyName,
		Email:       captured.Email,
		TotalScore:  captured.TotalScore,
	})
	if err != nil {
		return err
	}

	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		e.log.Error("failed to enqueue hot lead notification",
			"leadId", captured.LeadID, "error", err)
		return err
	}

	e.log.Info("hot lead notification enqueued", "leadId", captured.LeadID)
	return nil
}

// Processor handles notification tasks on the worker side.
type Processor struct {
	sender *Sender
	log    *logger.Logger
}

// NewProcessor creates a notification task processor.
func NewProcessor(sender *Sender, log *logger.Logger) *Processor {
	return &Processor{sender: sender, log: log}
}

// Register mounts the processor's handlers on an asynq mux.
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeHotLead, p.HandleHotLead)
}

// HandleHotLead emails the configured inbox about a hot lead.
func (p *Processor) HandleHotLead(ctx context.Context, task *asynq.Task) error {
	var payload HotLeadPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal hot lead payload: %w", err)
	}

	subject := fmt.Sprintf("Hot lead: %s (%s)", payload.FullName, payload.CompanyName)
	body := fmt.Sprintf(
		"A new hot lead just came in.\n\nName: %s\nCompany: %s\nEmail: %s\nScore: %d/100\n\nLead ID: %s\n",
		payload.FullName, payload.CompanyName, payload.Email, payload.TotalScore, payload.LeadID,
	)

	if err := p.sender.Send(ctx, subject, body); err != nil {
		return err
	}

	p.log.Info("hot lead notification sent", "leadId", payload.LeadID)
	return nil
}
