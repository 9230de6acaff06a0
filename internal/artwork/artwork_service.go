// internal/artwork/artwork_service.go
package artwork

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

const (
	cacheKeyAll = "artworks:all"
	cacheTTL    = 10 * time.Minute
)

type Service interface {
	List() ([]Artwork, error)
	Create(req CreateArtworkRequest) (*Artwork, error)
	Delete(id uint) error
}

type service struct {
	repo Repository
	rdb  *redis.Client
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb}
}

// List galeri adalah halaman publik yang paling sering dibaca, jadi
// pakai read-through cache yang sama dengan katalog produk.
func (s *service) List() ([]Artwork, error) {
	val, err := s.rdb.Get(ctx, cacheKeyAll).Result()
	if err == nil {
		var artworks []Artwork
		if json.Unmarshal([]byte(val), &artworks) == nil {
			return artworks, nil
		}
	}

	artworks, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(artworks); err == nil {
		s.rdb.Set(ctx, cacheKeyAll, jsonData, cacheTTL)
	}
	return artworks, nil
}

func (s *service) Create(req CreateArtworkRequest) (*Artwork, error) {
	created, err := s.repo.Save(&Artwork{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return created, nil
}

func (s *service) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *service) invalidate() {
	if err := s.rdb.Del(ctx, cacheKeyAll).Err(); err != nil {
		log.Printf("PERINGATAN: gagal invalidasi cache artwork: %v", err)
	}
}
