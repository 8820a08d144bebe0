package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/fyyur/internal/models"
	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	if db == nil {
		panic("repository: nil database session")
	}
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) All(ctx context.Context) ([]models.Artist, error) {
	artists := []models.Artist{}
	if err := r.db.WithContext(ctx).Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (r *ArtistRepository) Search(ctx context.Context, term string) (SearchResult[models.Artist], error) {
	return searchByName[models.Artist](ctx, r.db, term)
}

func (r *ArtistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Preload("Shows.Venue").First(&artist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load artist %d: %w", id, err)
	}
	return &artist, nil
}

func (r *ArtistRepository) Create(ctx context.Context, in ArtistInput) (*models.Artist, error) {
	var artist models.Artist
	in.apply(&artist)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create artist %q: %w", in.Name, err)
	}
	return &artist, nil
}

func (r *ArtistRepository) Update(ctx context.Context, id uint, in ArtistInput) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		in.apply(&artist)
		return tx.Save(&artist).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update artist %d: %w", id, err)
	}
	return &artist, nil
}
