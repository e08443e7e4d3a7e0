// Package storetest provides store fixtures for package-level tests. Each
// call opens a private in-memory database so tests never share state.
package storetest

import (
	"fmt"
	"testing"

	"firmlynk/internal/logger"
	"firmlynk/internal/models"
	"firmlynk/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func New(tb testing.TB) *store.Store {
	tb.Helper()
	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	s := store.New(db, logger.NewNop())
	if err := s.Migrate(); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return s
}

// Seeded returns a store loaded with the demo dataset.
func Seeded(tb testing.TB) *store.Store {
	tb.Helper()
	s := New(tb)
	if err := s.Seed(); err != nil {
		tb.Fatalf("seed test db: %v", err)
	}
	return s
}

func SeedFirm(tb testing.TB, s *store.Store, id, name string) *models.Firm {
	tb.Helper()
	f := &models.Firm{ID: id, Name: name}
	if err := s.Create(f); err != nil {
		tb.Fatalf("seed firm: %v", err)
	}
	return f
}

func SeedUser(tb testing.TB, s *store.Store, id string, role models.Role, firmID string) *models.User {
	tb.Helper()
	u := &models.User{
		ID:           id,
		Name:         id,
		Email:        id + "@example.test",
		PasswordHash: "x",
		Role:         role,
		FirmID:       firmID,
	}
	if err := s.Create(u); err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProject(tb testing.TB, s *store.Store, id, firmID string, clientIDs ...string) *models.Project {
	tb.Helper()
	p := &models.Project{
		ID:        id,
		FirmID:    firmID,
		Name:      "Project " + id,
		Status:    models.ProjectActive,
		ClientIDs: models.StringList(clientIDs),
	}
	if err := s.Create(p); err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}
