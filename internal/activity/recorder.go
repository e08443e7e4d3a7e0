package activity

import (
	"time"

	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

// Recorder appends immutable entries to the project activity feed and to
// per-entity audit trails. Entries are never edited or deleted afterwards.
type Recorder struct {
	store *store.Store
	log   *logger.Logger
}

func New(s *store.Store, baseLog *logger.Logger) *Recorder {
	return &Recorder{store: s, log: baseLog.With("component", "activity")}
}

type Entry struct {
	Type    models.EntryType
	Message string
	UserID  string
	Related *models.RelatedEntity
}

// Record appends an entry to the target project's activity feed.
func (r *Recorder) Record(projectID string, e Entry) error {
	row := models.ActivityLogEntry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Type:      e.Type,
		Message:   e.Message,
		UserID:    e.UserID,
		Related:   e.Related,
		ProjectID: projectID,
	}
	return r.store.Create(&row)
}

// RecordAudit appends an entry to an entity's own audit trail. The entry is
// self-related: relatedEntity always points at the entity itself.
func (r *Recorder) RecordAudit(entryType models.EntryType, entityID, message, userID string) error {
	row := models.ActivityLogEntry{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Type:       entryType,
		Message:    message,
		UserID:     userID,
		Related:    &models.RelatedEntity{ID: entityID, EntityType: string(entryType)},
		EntityType: string(entryType),
		EntityID:   entityID,
	}
	return r.store.Create(&row)
}
