package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kbartosik/exam-session-api/internal/models"
	appErrors "github.com/kbartosik/exam-session-api/pkg/errors"
)

const roomListCacheKey = "rooms:list"

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByName(ctx context.Context, nazwa string) (*models.Room, error)
	ExistsByName(ctx context.Context, nazwa string) (bool, error)
	Create(ctx context.Context, room *models.Room) error
}

// CreateRoomRequest describes payload for creating a room.
type CreateRoomRequest struct {
	Nazwa     string  `json:"nazwa" validate:"required"`
	Budynek   string  `json:"budynek" validate:"required"`
	Pojemnosc int     `json:"pojemnosc" validate:"required,gt=0"`
	Typ       *string `json:"typ"`
}

// RoomService is the room directory: named rooms with building and
// capacity, looked up by exact name.
type RoomService struct {
	repo         roomRepository
	availability *AvailabilityService
	cache        *CacheService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewRoomService instantiates RoomService.
func NewRoomService(repo roomRepository, availability *AvailabilityService, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{repo: repo, availability: availability, cache: cache, validator: validate, logger: logger}
}

// List returns all rooms sorted by name.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	var cached []models.Room
	if hit, _ := s.cache.Get(ctx, roomListCacheKey, &cached); hit {
		return cached, nil
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}

	_ = s.cache.Set(ctx, roomListCacheKey, rooms, 0)
	return rooms, nil
}

// GetByName returns the room with the exact name, or ROOM_NOT_FOUND.
func (s *RoomService) GetByName(ctx context.Context, nazwa string) (*models.Room, error) {
	room, err := s.repo.FindByName(ctx, nazwa)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrRoomNotFound, fmt.Sprintf("Sala '%s' nie została znaleziona", nazwa))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return room, nil
}

// Create registers a new room; name collisions are rejected with
// DUPLICATE_ROOM (exact, case-sensitive match).
func (s *RoomService) Create(ctx context.Context, req CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}

	exists, err := s.repo.ExistsByName(ctx, req.Nazwa)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check room name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateRoom, fmt.Sprintf("Sala '%s' już istnieje", req.Nazwa))
	}

	room := models.Room{
		Nazwa:     req.Nazwa,
		Budynek:   req.Budynek,
		Pojemnosc: req.Pojemnosc,
		Typ:       req.Typ,
	}
	if err := s.repo.Create(ctx, &room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create room")
	}

	_ = s.cache.Invalidate(ctx, roomListCacheKey)
	s.logger.Info("room created", zap.String("nazwa", room.Nazwa), zap.Int("pojemnosc", room.Pojemnosc))
	return &room, nil
}

// CheckCapacityAndAvailability verifies, in order, that the room exists,
// that it can seat liczbaOsob, and that the slot is free. The ordering is
// deliberate so the message always names the first failed precondition.
func (s *RoomService) CheckCapacityAndAvailability(ctx context.Context, sala, data, godzina string, liczbaOsob int) (*models.RoomAvailability, error) {
	room, err := s.repo.FindByName(ctx, sala)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.RoomAvailability{
				Available: false,
				Message:   fmt.Sprintf("Sala '%s' nie istnieje w systemie", sala),
			}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}

	if room.Pojemnosc < liczbaOsob {
		return &models.RoomAvailability{
			Available: false,
			Message:   fmt.Sprintf("Sala '%s' ma pojemność %d miejsc, a potrzeba %d miejsc", sala, room.Pojemnosc, liczbaOsob),
			Room:      room,
		}, nil
	}

	free, err := s.availability.IsRoomFree(ctx, data, godzina, sala, "")
	if err != nil {
		return nil, err
	}
	if !free {
		return &models.RoomAvailability{
			Available: false,
			Message:   fmt.Sprintf("Sala '%s' jest już zajęta w dniu %s o godzinie %s", sala, data, godzina),
			Room:      room,
		}, nil
	}

	return &models.RoomAvailability{
		Available: true,
		Message:   fmt.Sprintf("Sala '%s' jest dostępna (pojemność: %d miejsc)", sala, room.Pojemnosc),
		Room:      room,
	}, nil
}
