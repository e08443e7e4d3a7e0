// Package lifecycle is the only write path into the entity store. It enforces
// legal status transitions, recomputes derived totals, and records every
// mutation twice: once on the entity's own audit trail and once on the parent
// project's activity feed.
package lifecycle

import (
	"firmlynk/internal/activity"
	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

type Manager struct {
	store *store.Store
	log   *logger.Logger
}

func New(s *store.Store, baseLog *logger.Logger) *Manager {
	return &Manager{store: s, log: baseLog.With("component", "lifecycle")}
}

// recordTransition is the single place the dual audit+activity write happens.
// Both entries carry the same message and actor; dropping either half would
// break the pairing invariant, so no mutation writes log entries any other
// way.
func recordTransition(tx *store.Store, log *logger.Logger, entryType models.EntryType, entityID, projectID, message, userID string) error {
	rec := activity.New(tx, log)
	if err := rec.RecordAudit(entryType, entityID, message, userID); err != nil {
		return err
	}
	return rec.Record(projectID, activity.Entry{
		Type:    entryType,
		Message: message,
		UserID:  userID,
		Related: &models.RelatedEntity{ID: entityID, EntityType: string(entryType)},
	})
}

// withLineItemIDs assigns a fresh id to every line item submitted without one.
func withLineItemIDs(items models.LineItems) models.LineItems {
	out := make(models.LineItems, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		out[i] = it
	}
	return out
}
