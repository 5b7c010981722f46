package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mottasimsadi/food-share-server/internal/model"
)

// Sentinel errors the handlers translate into 4xx responses. Anything else
// coming out of this package is a store fault.
var (
	ErrInvalidID = errors.New("malformed listing id")
	ErrNotFound  = errors.New("listing not found")
)

// ListingRepository wraps the single foodShare collection. It never
// validates or defaults document fields; whatever the donor sent is what
// gets stored and matched.
type ListingRepository struct {
	Coll *mongo.Collection
}

func NewListingRepository(coll *mongo.Collection) *ListingRepository {
	return &ListingRepository{Coll: coll}
}

// Insert stores the document verbatim and returns the generated id in hex.
func (r *ListingRepository) Insert(ctx context.Context, doc model.Listing) (string, error) {
	res, err := r.Coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert listing: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// Find returns every document matching filter, ordered per sort when one is
// given and truncated to limit when positive. Callers always get a non-nil
// slice so empty results serialize as [].
func (r *ListingRepository) Find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]model.Listing, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cur.Close(ctx)

	listings := []model.Listing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return listings, nil
}

// FindByID looks a single listing up by its hex id. A string that is not a
// valid ObjectID fails with ErrInvalidID before the store is touched.
func (r *ListingRepository) FindByID(ctx context.Context, id string) (model.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var listing model.Listing
	err = r.Coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find listing %s: %w", id, err)
	}
	return listing, nil
}

// UpdateStatus replaces only the status field. The new value is written
// literally, and an id that matches nothing reports zero modified documents
// rather than an error.
func (r *ListingRepository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{model.FieldStatus: status}},
	)
	if err != nil {
		return 0, fmt.Errorf("update listing %s: %w", id, err)
	}
	return res.ModifiedCount, nil
}
