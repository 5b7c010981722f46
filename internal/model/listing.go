package model

import "go.mongodb.org/mongo-driver/bson"

// Listing is a donor-submitted food-sharing record. Donors may attach any
// extra fields they like, so documents are kept schemaless and stored
// verbatim; only the fields below have meaning to the query layer.
type Listing = bson.M

// Field names the server filters and sorts on.
const (
	FieldFoodName       = "foodName"
	FieldFoodQuantity   = "foodQuantity"
	FieldPickupLocation = "pickupLocation"
	FieldExpireDate     = "expireDate"
	FieldDonorEmail     = "donorEmail"
	FieldStatus         = "status"
)

// StatusAvailable marks a listing that still appears in public searches.
// Status is a free-form string; any other value a donor writes is stored
// as-is and simply never matches the available filter.
const StatusAvailable = "available"
