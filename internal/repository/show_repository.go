package repository

import (
	"context"
	"fmt"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	if db == nil {
		panic("repository: nil database session")
	}
	return &ShowRepository{db: db}
}

// Create inserts a show. The database checks both foreign keys; a missing
// venue or artist comes back as ErrReferencedRowMissing. The start time is
// stored as UTC wall-clock time.
func (r *ShowRepository) Create(ctx context.Context, in ShowInput) (*models.Show, error) {
	show := models.Show{
		StartTime: in.StartTime.UTC(),
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&show).Error
	})
	if isForeignKeyViolation(err) {
		return nil, fmt.Errorf("venue %d, artist %d: %w", in.VenueID, in.ArtistID, ErrReferencedRowMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}
	return &show, nil
}

// ListWithDetails returns every show joined with its venue and artist.
func (r *ShowRepository) ListWithDetails(ctx context.Context) ([]models.Show, error) {
	shows := []models.Show{}
	err := r.db.WithContext(ctx).
		InnerJoins("Venue").
		InnerJoins("Artist").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}
