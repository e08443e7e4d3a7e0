package lifecycle

import (
	"fmt"
	"time"

	"firmlynk/internal/activity"
	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	FirmID        string
	Name          string
	Description   string
	Status        models.ProjectStatus
	ClientIDs     []string
	InternalNotes string
}

func (m *Manager) CreateProject(in CreateProjectInput, userID string) (*models.Project, error) {
	if in.Name == "" || in.FirmID == "" {
		return nil, fmt.Errorf("%w: firm id and name are required", models.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.ProjectPlanning
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", models.ErrValidation, in.Status)
	}

	project := &models.Project{
		ID:            uuid.NewString(),
		FirmID:        in.FirmID,
		Name:          in.Name,
		Description:   in.Description,
		Status:        status,
		ClientIDs:     append(models.StringList{}, in.ClientIDs...),
		InternalNotes: in.InternalNotes,
	}

	err := m.store.Transaction(func(tx *store.Store) error {
		if err := tx.Create(project); err != nil {
			return err
		}
		return activity.New(tx, m.log).Record(project.ID, activity.Entry{
			Type:    models.EntryProject,
			Message: "Project created",
			UserID:  userID,
			Related: &models.RelatedEntity{ID: project.ID, EntityType: "project"},
		})
	})
	if err != nil {
		return nil, err
	}

	m.log.Info("project created", "projectId", project.ID, "firmId", project.FirmID, "actor", userID)
	return m.attachProjectActivity(project)
}

type UpdateProjectInput struct {
	Name          *string
	Description   *string
	Status        *models.ProjectStatus
	ClientIDs     *[]string
	InternalNotes *string
}

// UpdateProject applies the supplied fields in place. FirmID and the activity
// log are never caller-assignable.
func (m *Manager) UpdateProject(id string, in UpdateProjectInput, userID string) (*models.Project, error) {
	if in.Status != nil && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", models.ErrValidation, *in.Status)
	}

	var project *models.Project
	err := m.store.Transaction(func(tx *store.Store) error {
		var err error
		project, err = tx.ProjectByID(id)
		if err != nil {
			return err
		}
		if project == nil {
			return models.ErrNotFound
		}

		if in.Name != nil {
			project.Name = *in.Name
		}
		if in.Description != nil {
			project.Description = *in.Description
		}
		if in.Status != nil {
			project.Status = *in.Status
		}
		if in.ClientIDs != nil {
			project.ClientIDs = append(models.StringList{}, (*in.ClientIDs)...)
		}
		if in.InternalNotes != nil {
			project.InternalNotes = *in.InternalNotes
		}

		if err := tx.Save(project); err != nil {
			return err
		}
		return activity.New(tx, m.log).Record(project.ID, activity.Entry{
			Type:    models.EntryProject,
			Message: "Project updated",
			UserID:  userID,
			Related: &models.RelatedEntity{ID: project.ID, EntityType: "project"},
		})
	})
	if err != nil {
		return nil, err
	}
	return m.attachProjectActivity(project)
}

type AddProjectFileInput struct {
	ProjectID string
	FileName  string
	FileType  string
	URL       string
}

func (m *Manager) AddProjectFile(in AddProjectFileInput, userID string) (*models.ProjectFile, error) {
	if in.FileName == "" {
		return nil, fmt.Errorf("%w: file name is required", models.ErrValidation)
	}

	var file *models.ProjectFile
	err := m.store.Transaction(func(tx *store.Store) error {
		project, err := tx.ProjectByID(in.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return models.ErrNotFound
		}

		file = &models.ProjectFile{
			ID:         uuid.NewString(),
			ProjectID:  project.ID,
			FileName:   in.FileName,
			FileType:   in.FileType,
			URL:        in.URL,
			UploadedBy: userID,
			UploadedAt: time.Now().UTC(),
		}
		if err := tx.Create(file); err != nil {
			return err
		}
		return activity.New(tx, m.log).Record(project.ID, activity.Entry{
			Type:    models.EntryFile,
			Message: "File uploaded: " + file.FileName,
			UserID:  userID,
			Related: &models.RelatedEntity{ID: file.ID, EntityType: "file"},
		})
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (m *Manager) attachProjectActivity(project *models.Project) (*models.Project, error) {
	entries, err := m.store.ProjectActivity(project.ID)
	if err != nil {
		return nil, err
	}
	project.ActivityLog = entries
	return project, nil
}
