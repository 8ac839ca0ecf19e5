package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
)

// DemoUserRepository reads the seeded demo users. The table is read-only
// from the API's point of view.
type DemoUserRepository struct {
	db *sqlx.DB
}

// NewDemoUserRepository creates a new demo user repository.
func NewDemoUserRepository(db *sqlx.DB) *DemoUserRepository {
	return &DemoUserRepository{db: db}
}

// List returns all demo users.
func (r *DemoUserRepository) List(ctx context.Context) ([]models.DemoUser, error) {
	const query = `SELECT id, name, role, kierunek, typ_studiow, rok, przedmiot FROM demo_users ORDER BY name ASC`
	var users []models.DemoUser
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list demo users: %w", err)
	}
	return users, nil
}
