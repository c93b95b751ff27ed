package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkpulse/internal/models"
	"parkpulse/internal/storage"
)

var (
	// ErrValidation reports malformed caller input, rejected before any I/O.
	ErrValidation = errors.New("invalid request")

	// ErrUserNotFound reports a missing user record. The HTTP contract
	// conflates it with other failures; it exists for callers that care.
	ErrUserNotFound = errors.New("user not found")
)

type UserServiceInterface interface {
	Get(ctx context.Context, uid string) (*models.UserRecord, error)
	Create(ctx context.Context, uid string) (*models.UserRecord, error)
	Replace(ctx context.Context, record *models.UserRecord) (*models.UserRecord, error)
	AddFavorite(ctx context.Context, uid, destID, parkID, attractionID string) (*models.UserRecord, error)
	RemoveFavorite(ctx context.Context, uid, attractionID string) (*models.UserRecord, error)
}

// UserService owns the read-modify-write round trips for user records. The
// store gives last-writer-wins per key; two devices racing on the same
// account can lose one change, an accepted limitation of the contract.
type UserService struct {
	store *storage.DocumentStore
}

func NewUserService(store *storage.DocumentStore) UserServiceInterface {
	return &UserService{store: store}
}

// Get loads the record and normalizes it, persisting back only when
// normalization changed the document.
func (us *UserService) Get(ctx context.Context, uid string) (*models.UserRecord, error) {
	record, err := us.load(ctx, uid)
	if err != nil {
		return nil, err
	}

	if NormalizeRecord(record, time.Now().UnixMilli()) {
		if err := us.store.SaveUser(ctx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Create stores the default record for uid. Creating an existing account is
// idempotent: the stored record is returned untouched.
func (us *UserService) Create(ctx context.Context, uid string) (*models.UserRecord, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: missing uid", ErrValidation)
	}

	existing, err := us.store.LoadUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	record := models.NewUserRecord(uid)
	if err := us.store.SaveUser(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Replace overwrites the stored record wholesale and echoes it back.
func (us *UserService) Replace(ctx context.Context, record *models.UserRecord) (*models.UserRecord, error) {
	if record == nil || record.UID == "" {
		return nil, fmt.Errorf("%w: missing uid", ErrValidation)
	}
	if err := us.store.SaveUser(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (us *UserService) AddFavorite(ctx context.Context, uid, destID, parkID, attractionID string) (*models.UserRecord, error) {
	if attractionID == "" {
		return nil, fmt.Errorf("%w: missing attraction id", ErrValidation)
	}

	record, err := us.load(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	changed := NormalizeRecord(record, now)

	if err := AddFavorite(record, destID, parkID, attractionID, now); err != nil {
		// Persist the normalization even when the add is rejected, so the
		// stored document does not drift.
		if changed {
			_ = us.store.SaveUser(ctx, record)
		}
		return nil, err
	}

	if err := us.store.SaveUser(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (us *UserService) RemoveFavorite(ctx context.Context, uid, attractionID string) (*models.UserRecord, error) {
	if attractionID == "" {
		return nil, fmt.Errorf("%w: missing attraction id", ErrValidation)
	}

	record, err := us.load(ctx, uid)
	if err != nil {
		return nil, err
	}

	changed := NormalizeRecord(record, time.Now().UnixMilli())
	changed = RemoveFavorite(record, attractionID) || changed

	if changed {
		if err := us.store.SaveUser(ctx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

func (us *UserService) load(ctx context.Context, uid string) (*models.UserRecord, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: missing uid", ErrValidation)
	}
	record, err := us.store.LoadUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrUserNotFound
	}
	return record, nil
}
