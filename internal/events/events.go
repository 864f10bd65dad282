// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadtracker_backend/platform/events"
	"leadtracker_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *events.InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCaptured is published when a submission has been validated, scored,
// and persisted.
type LeadCaptured struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	FullName    string    `json:"fullName"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	TotalScore  int       `json:"totalScore"`
	Category    string    `json:"category"`
}

func (e LeadCaptured) EventName() string { return "leads.lead.captured" }

// =============================================================================
// Visitors Domain Events
// =============================================================================

// VisitorTracked is published when a new visitor beacon is recorded.
type VisitorTracked struct {
	BaseEvent
	VisitorID uuid.UUID `json:"visitorId"`
	IPAddress string    `json:"ipAddress"`
	Page      string    `json:"page"`
}

func (e VisitorTracked) EventName() string { return "visitors.visitor.tracked" }
