package audit

//go:generate mockgen -destination=mock_recorder.go -package=audit sealed-auction/internal/audit Recorder

import (
	"context"

	model "sealed-auction/internal/models"
	"sealed-auction/internal/repository"
	"sealed-auction/utils"
)

// Action names recorded by the services
const (
	ActionCreate        = "create"
	ActionClose         = "close"
	ActionCreateSealed  = "create_sealed"
	ActionReveal        = "reveal"
	ActionDeclareWinner = "declare_winner"
	ActionRegister      = "register"
	ActionRecord        = "record"
)

// Recorder appends an audit event for a state change. Recording is
// fire-and-forget: implementations log their own failures.
type Recorder interface {
	Record(ctx context.Context, entity, entityID, action string, details map[string]any)
}

func newEvent(now utils.Clock, entity, entityID, action string, details map[string]any) model.AuditEvent {
	if details == nil {
		details = map[string]any{}
	}
	return model.AuditEvent{
		ID:        utils.GenerateID(),
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Details:   details,
		CreatedAt: now(),
	}
}

// StoreRecorder writes audit events to an AuditLog
type StoreRecorder struct {
	log repository.AuditLog
	now utils.Clock
}

// NewStoreRecorder creates a recorder backed by log
func NewStoreRecorder(log repository.AuditLog) *StoreRecorder {
	return &StoreRecorder{log: log, now: utils.UTCNow}
}

// Record appends the event to the audit log
func (r *StoreRecorder) Record(ctx context.Context, entity, entityID, action string, details map[string]any) {
	event := newEvent(r.now, entity, entityID, action, details)
	if err := r.log.AppendAudit(ctx, event); err != nil {
		utils.Warn("audit: failed to append event", map[string]any{
			"entity":    entity,
			"entity_id": entityID,
			"action":    action,
			"error":     err.Error(),
		})
	}
}

// Multi fans an event out to several recorders
type Multi []Recorder

// Record forwards the event to every recorder in order
func (m Multi) Record(ctx context.Context, entity, entityID, action string, details map[string]any) {
	for _, r := range m {
		r.Record(ctx, entity, entityID, action, details)
	}
}
