package store

import (
	"errors"
	"time"

	"firmlynk/internal/logger"
	"firmlynk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Store holds the canonical entity tables. It is constructed explicitly and
// passed by reference; there is no package-level instance. The store itself
// has no business rules: lookups return a nil entity when the id is unknown
// and leave not-found handling to the caller.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) *Store {
	return &Store{db: db, log: baseLog.With("component", "store")}
}

// Open connects to postgres when a DSN is given, otherwise it opens a shared
// in-memory sqlite database. The in-memory store matches the reference
// deployment: nothing survives a restart, Seed rebuilds the world.
func Open(dsn string, log *logger.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)}

	if dsn == "" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
	}

	const maxAttempts = 10
	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to db", "attempt", i, "max", maxAttempts)
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			return db, nil
		}
		log.Warn("db connection failed", "error", err)
		time.Sleep(2 * time.Second)
	}
	return nil, err
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.Firm{},
		&models.User{},
		&models.Project{},
		&models.ProjectFile{},
		&models.Proposal{},
		&models.Invoice{},
		&models.FieldReviewReport{},
		&models.ActivityLogEntry{},
	)
}

// Reset drops every table and recreates the schema. Used by tests and by the
// in-memory deployment at startup.
func (s *Store) Reset() error {
	err := s.db.Migrator().DropTable(
		&models.ActivityLogEntry{},
		&models.FieldReviewReport{},
		&models.Invoice{},
		&models.Proposal{},
		&models.ProjectFile{},
		&models.Project{},
		&models.User{},
		&models.Firm{},
	)
	if err != nil {
		return err
	}
	return s.Migrate()
}

// Transaction runs fn against a store bound to a single transaction. Lifecycle
// mutations use this so their read-modify-write sequences do not interleave.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, log: s.log})
	})
}

func (s *Store) Create(value interface{}) error {
	return s.db.Create(value).Error
}

func (s *Store) Save(value interface{}) error {
	return s.db.Save(value).Error
}

// first leaves not-found semantics to the caller: a missing row comes back as
// (found=false, err=nil), never as an error.
func (s *Store) first(dest interface{}, query string, args ...interface{}) (bool, error) {
	err := s.db.Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) FirmByID(id string) (*models.Firm, error) {
	var f models.Firm
	found, err := s.first(&f, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

func (s *Store) Firms() ([]models.Firm, error) {
	var firms []models.Firm
	return firms, s.db.Order("created_at asc").Find(&firms).Error
}

func (s *Store) UserByID(id string) (*models.User, error) {
	var u models.User
	found, err := s.first(&u, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var u models.User
	found, err := s.first(&u, "email = ?", email)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) UsersByFirm(firmID string, roles ...models.Role) ([]models.User, error) {
	q := s.db.Where("firm_id = ?", firmID).Order("created_at asc")
	if len(roles) > 0 {
		q = q.Where("role IN ?", roles)
	}
	var users []models.User
	return users, q.Find(&users).Error
}

func (s *Store) ProjectByID(id string) (*models.Project, error) {
	var p models.Project
	found, err := s.first(&p, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ProjectsByFirm(firmID string) ([]models.Project, error) {
	var projects []models.Project
	return projects, s.db.Where("firm_id = ?", firmID).Order("created_at asc").Find(&projects).Error
}

func (s *Store) ProposalByID(id string) (*models.Proposal, error) {
	var p models.Proposal
	found, err := s.first(&p, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ProposalsByProject(projectID string) ([]models.Proposal, error) {
	var out []models.Proposal
	return out, s.db.Where("project_id = ?", projectID).Order("created_at asc").Find(&out).Error
}

func (s *Store) ProposalsByFirm(firmID string) ([]models.Proposal, error) {
	var out []models.Proposal
	return out, s.db.Where("firm_id = ?", firmID).Order("created_at asc").Find(&out).Error
}

func (s *Store) InvoiceByID(id string) (*models.Invoice, error) {
	var inv models.Invoice
	found, err := s.first(&inv, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &inv, nil
}

func (s *Store) InvoicesByProject(projectID string) ([]models.Invoice, error) {
	var out []models.Invoice
	return out, s.db.Where("project_id = ?", projectID).Order("created_at asc").Find(&out).Error
}

func (s *Store) InvoicesByFirm(firmID string) ([]models.Invoice, error) {
	var out []models.Invoice
	return out, s.db.Where("firm_id = ?", firmID).Order("created_at asc").Find(&out).Error
}

func (s *Store) FieldReportByID(id string) (*models.FieldReviewReport, error) {
	var r models.FieldReviewReport
	found, err := s.first(&r, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &r, nil
}

func (s *Store) FieldReportsByProject(projectID string) ([]models.FieldReviewReport, error) {
	var out []models.FieldReviewReport
	return out, s.db.Where("project_id = ?", projectID).Order("created_at asc").Find(&out).Error
}

func (s *Store) FieldReportsByFirm(firmID string) ([]models.FieldReviewReport, error) {
	var out []models.FieldReviewReport
	return out, s.db.Where("firm_id = ?", firmID).Order("created_at asc").Find(&out).Error
}

func (s *Store) FileByID(id string) (*models.ProjectFile, error) {
	var f models.ProjectFile
	found, err := s.first(&f, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &f, nil
}

func (s *Store) FilesByProject(projectID string) ([]models.ProjectFile, error) {
	var out []models.ProjectFile
	return out, s.db.Where("project_id = ?", projectID).Order("uploaded_at asc").Find(&out).Error
}

func (s *Store) FilesByProjects(projectIDs []string) ([]models.ProjectFile, error) {
	var out []models.ProjectFile
	if len(projectIDs) == 0 {
		return out, nil
	}
	return out, s.db.Where("project_id IN ?", projectIDs).Order("uploaded_at asc").Find(&out).Error
}

// ProjectActivity returns the project feed, newest first.
func (s *Store) ProjectActivity(projectID string) ([]models.ActivityLogEntry, error) {
	var out []models.ActivityLogEntry
	return out, s.db.Where("project_id = ?", projectID).Order("seq desc").Find(&out).Error
}

// EntityAudit returns an entity's own audit trail, newest first.
func (s *Store) EntityAudit(entityType, entityID string) ([]models.ActivityLogEntry, error) {
	var out []models.ActivityLogEntry
	return out, s.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Order("seq desc").Find(&out).Error
}
