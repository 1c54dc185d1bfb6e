package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per submission kind.
const (
	CollectionDonations   = "donations"
	CollectionMemberships = "memberships"
	CollectionVolunteers  = "volunteers"
	CollectionContacts    = "contacts"
)

// Mongo persists records in one MongoDB collection. The driver pools
// connections, so a single value is shared by all in-flight requests.
type Mongo[T Record] struct {
	coll *mongo.Collection
}

// NewMongo constructs a MongoDB-backed Collection over the named collection.
func NewMongo[T Record](db *mongo.Database, name string) *Mongo[T] {
	return &Mongo[T]{coll: db.Collection(name)}
}

func (s *Mongo[T]) Insert(ctx context.Context, rec T) error {
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert into %s: %w", s.coll.Name(), err)
	}
	return nil
}

func (s *Mongo[T]) List(ctx context.Context, page Page) ([]T, error) {
	opts := options.Find().
		SetSkip(page.Skip).
		SetLimit(page.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode from %s: %w", s.coll.Name(), err)
	}
	return out, nil
}

func (s *Mongo[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.coll.Name(), err)
	}
	return n, nil
}

func (s *Mongo[T]) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$gte": since}}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s since %s: %w", s.coll.Name(), since.Format(time.RFC3339), err)
	}
	return n, nil
}
