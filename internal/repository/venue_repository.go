package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

type VenueRepository struct {
	db *gorm.DB
}

// NewVenueRepository binds the repository to a request-scoped session.
func NewVenueRepository(db *gorm.DB) *VenueRepository {
	if db == nil {
		panic("repository: nil database session")
	}
	return &VenueRepository{db: db}
}

func (r *VenueRepository) All(ctx context.Context) ([]models.Venue, error) {
	venues := []models.Venue{}
	if err := r.db.WithContext(ctx).Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

func (r *VenueRepository) Search(ctx context.Context, term string) (SearchResult[models.Venue], error) {
	return searchByName[models.Venue](ctx, r.db, term)
}

// FindByID loads a venue together with its shows and their artists.
func (r *VenueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Preload("Shows.Artist").First(&venue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load venue %d: %w", id, err)
	}
	return &venue, nil
}

func (r *VenueRepository) Create(ctx context.Context, in VenueInput) (*models.Venue, error) {
	var venue models.Venue
	in.apply(&venue)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create venue %q: %w", in.Name, err)
	}
	return &venue, nil
}

// Update overwrites every settable field of the venue. Fields missing from
// the input are written as empty values.
func (r *VenueRepository) Update(ctx context.Context, id uint, in VenueInput) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		in.apply(&venue)
		return tx.Save(&venue).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update venue %d: %w", id, err)
	}
	return &venue, nil
}

// Delete removes a venue that no show references. Shows are never cascaded.
func (r *VenueRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isForeignKeyViolation(err):
		return fmt.Errorf("venue %d: %w", id, ErrHasDependents)
	default:
		return fmt.Errorf("failed to delete venue %d: %w", id, err)
	}
}
