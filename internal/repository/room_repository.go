package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kbartosik/exam-session-api/internal/models"
)

// RoomRepository provides persistence for exam rooms.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// List returns all rooms ordered by name.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	const query = `SELECT id, nazwa, budynek, pojemnosc, typ FROM rooms ORDER BY nazwa ASC`
	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// FindByName loads a room by its exact name. Returns sql.ErrNoRows when
// absent.
func (r *RoomRepository) FindByName(ctx context.Context, nazwa string) (*models.Room, error) {
	const query = `SELECT id, nazwa, budynek, pojemnosc, typ FROM rooms WHERE nazwa = $1`
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, nazwa); err != nil {
		return nil, err
	}
	return &room, nil
}

// ExistsByName reports whether a room with the given name exists.
func (r *RoomRepository) ExistsByName(ctx context.Context, nazwa string) (bool, error) {
	const query = `SELECT 1 FROM rooms WHERE nazwa = $1 LIMIT 1`
	var one int
	err := r.db.GetContext(ctx, &one, query, nazwa)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check room exists: %w", err)
	}
	return true, nil
}

// Create stores a new room record.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	const query = `INSERT INTO rooms (id, nazwa, budynek, pojemnosc, typ) VALUES (:id, :nazwa, :budynek, :pojemnosc, :typ)`
	if _, err := r.db.NamedExecContext(ctx, query, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}
