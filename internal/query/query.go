// Package query builds the filter and sort documents for the public
// available-foods search from untrusted query-string input.
package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mottasimsadi/food-share-server/internal/model"
)

// Recognized sort keys. Anything else produces no explicit ordering.
const (
	SortExpireDate = "expireDate"
	SortQuantity   = "quantity"
	SortLocation   = "location"
)

// Build translates the search and sort parameters into a store filter and
// sort specification. The filter always pins status to available and matches
// the food name as a case-insensitive literal substring; an empty search term
// matches every listing. An empty sort key falls back to expireDate, while an
// unrecognized one yields a nil sort, leaving the store's natural order.
func Build(search, sortKey string) (bson.M, bson.D) {
	filter := bson.M{
		model.FieldStatus: model.StatusAvailable,
		model.FieldFoodName: bson.M{
			"$regex":   regexp.QuoteMeta(search),
			"$options": "i",
		},
	}

	var sort bson.D
	switch sortKey {
	case SortExpireDate, "":
		sort = bson.D{{Key: model.FieldExpireDate, Value: 1}}
	case SortQuantity:
		sort = bson.D{{Key: model.FieldFoodQuantity, Value: -1}}
	case SortLocation:
		sort = bson.D{{Key: model.FieldPickupLocation, Value: 1}}
	}

	return filter, sort
}

// Featured is the filter and sort behind the featured-foods carousel:
// available listings only, largest quantities first.
func Featured() (bson.M, bson.D) {
	return bson.M{model.FieldStatus: model.StatusAvailable},
		bson.D{{Key: model.FieldFoodQuantity, Value: -1}}
}

// ByDonor matches every listing whose donor email equals the verified
// subject's email claim. No ordering is applied.
func ByDonor(email string) bson.M {
	return bson.M{model.FieldDonorEmail: email}
}
