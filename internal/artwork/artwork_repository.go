// internal/artwork/artwork_repository.go
package artwork

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Save(a *Artwork) (*Artwork, error)
	FindAll() ([]Artwork, error)
	FindByID(id uint) (*Artwork, error)
	Delete(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Save(a *Artwork) (*Artwork, error) {
	if err := r.db.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repository) FindAll() ([]Artwork, error) {
	var artworks []Artwork
	if err := r.db.Order("created_at DESC").Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *repository) FindByID(id uint) (*Artwork, error) {
	var a Artwork
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Delete(id uint) error {
	res := r.db.Delete(&Artwork{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
