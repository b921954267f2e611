package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/storage"
)

var (
	// ErrUnknownCollection is returned for names outside models.Collections.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrInvalidPosition is returned for negative positions.
	ErrInvalidPosition = errors.New("position must be a non-negative integer")
)

// CollectionService exposes read and append access to the seeded collections.
type CollectionService interface {
	Collections() []string
	List(ctx context.Context, collection string) ([]bson.M, error)
	Get(ctx context.Context, collection string, position int64) (bson.M, error)
	Create(ctx context.Context, collection string, doc map[string]any) (string, error)
}

type collectionService struct {
	repo storage.DocumentRepository
}

// NewCollectionService returns a CollectionService backed by repo.
func NewCollectionService(repo storage.DocumentRepository) CollectionService {
	return &collectionService{repo: repo}
}

// Collections returns a copy of the collection names in seeding order.
func (s *collectionService) Collections() []string {
	out := make([]string, len(models.Collections))
	copy(out, models.Collections)
	return out
}

func (s *collectionService) List(ctx context.Context, collection string) ([]bson.M, error) {
	if err := known(collection); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, collection)
}

// Get returns the document at a zero-based position; storage.ErrNotFound
// signals a position past the end.
func (s *collectionService) Get(ctx context.Context, collection string, position int64) (bson.M, error) {
	if err := known(collection); err != nil {
		return nil, err
	}
	if position < 0 {
		return nil, ErrInvalidPosition
	}
	return s.repo.FindAt(ctx, collection, position)
}

func (s *collectionService) Create(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if err := known(collection); err != nil {
		return "", err
	}
	return s.repo.InsertOne(ctx, collection, bson.M(doc))
}

func known(collection string) error {
	if !models.IsCollection(collection) {
		return fmt.Errorf("%w %q", ErrUnknownCollection, collection)
	}
	return nil
}
