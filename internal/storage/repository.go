package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned when a positional lookup runs past the end of a collection.
var ErrNotFound = errors.New("document not found")

// DocumentRepository defines contract for DB operations on schemaless collections.
type DocumentRepository interface {
	DeleteAll(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []any) (int, error)
	FindAll(ctx context.Context, collection string) ([]bson.M, error)
	FindAt(ctx context.Context, collection string, position int64) (bson.M, error)
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type documentRepository struct {
	db    *mongo.Database
	close func(ctx context.Context) error
}

// Option customizes a repository built by NewDocumentRepository.
type Option func(*documentRepository)

// WithClose replaces the default Close, which disconnects the client behind db.
func WithClose(fn func(ctx context.Context) error) Option {
	return func(r *documentRepository) { r.close = fn }
}

// NewDocumentRepository returns a DocumentRepository backed by db.
func NewDocumentRepository(db *mongo.Database, opts ...Option) DocumentRepository {
	r := &documentRepository{db: db}
	r.close = func(ctx context.Context) error { return db.Client().Disconnect(ctx) }
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DeleteAll removes every document of a collection and returns how many were deleted.
func (r *documentRepository) DeleteAll(ctx context.Context, collection string) (int64, error) {
	res, err := r.db.Collection(collection).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// InsertMany bulk-inserts docs in one unordered request.
func (r *documentRepository) InsertMany(ctx context.Context, collection string, docs []any) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	res, err := r.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return len(res.InsertedIDs), nil
}

// FindAll returns every document of a collection in natural order.
func (r *documentRepository) FindAll(ctx context.Context, collection string) ([]bson.M, error) {
	cur, err := r.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}

// FindAt returns the document at a zero-based position in natural order.
func (r *documentRepository) FindAt(ctx context.Context, collection string, position int64) (bson.M, error) {
	var doc bson.M
	err := r.db.Collection(collection).
		FindOne(ctx, bson.D{}, options.FindOne().SetSkip(position)).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s at %d: %w", collection, position, err)
	}
	return doc, nil
}

// InsertOne stores doc and returns its identifier in string form.
func (r *documentRepository) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// Ping checks that the primary answers.
func (r *documentRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client unless WithClose replaced it.
func (r *documentRepository) Close(ctx context.Context) error {
	return r.close(ctx)
}
