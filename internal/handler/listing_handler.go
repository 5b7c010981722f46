package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mottasimsadi/food-share-server/internal/middleware"
	"github.com/mottasimsadi/food-share-server/internal/model"
	"github.com/mottasimsadi/food-share-server/internal/query"
	"github.com/mottasimsadi/food-share-server/internal/repository"
)

// featuredLimit is how many listings the featured-foods carousel shows.
const featuredLimit = 6

// ListingStore is what the handlers need from the listing collection.
// *repository.ListingRepository satisfies it; tests plug in an in-memory fake.
type ListingStore interface {
	Insert(ctx context.Context, doc model.Listing) (string, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]model.Listing, error)
	FindByID(ctx context.Context, id string) (model.Listing, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

// ListingHandler serves every food-share route.
type ListingHandler struct {
	Store ListingStore
}

func NewListingHandler(store ListingStore) *ListingHandler {
	return &ListingHandler{Store: store}
}

// RegisterRoutes wires all routes onto the engine. authMW guards the
// donor-management route only; everything else is public.
func (h *ListingHandler) RegisterRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.GET("/", h.Liveness)
	r.POST("/add-food", h.AddFood)
	r.GET("/available-foods", h.AvailableFoods)
	r.GET("/food/:id", h.GetFood)
	r.POST("/requests", h.AddRequest)
	r.PATCH("/food/:id", h.UpdateStatus)
	r.GET("/featured-foods", h.FeaturedFoods)
	r.GET("/manage-foods", authMW, h.ManageFoods)
}

// GET /
func (h *ListingHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Food Share is running perfectly!")
}

// POST /add-food
// The body is stored verbatim; no field is validated or defaulted.
func (h *ListingHandler) AddFood(c *gin.Context) {
	h.insert(c)
}

// POST /requests
// Food requests land in the same collection as listings.
func (h *ListingHandler) AddRequest(c *gin.Context) {
	h.insert(c)
}

func (h *ListingHandler) insert(c *gin.Context) {
	var doc model.Listing
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	id, err := h.Store.Insert(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GET /available-foods?search=&sort=
func (h *ListingHandler) AvailableFoods(c *gin.Context) {
	filter, sort := query.Build(c.Query("search"), c.Query("sort"))

	listings, err := h.Store.Find(c.Request.Context(), filter, sort, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GET /food/:id
func (h *ListingHandler) GetFood(c *gin.Context) {
	listing, err := h.Store.FindByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed listing id"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "listing not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, listing)
	}
}

// PATCH /food/:id
// Replaces the status field only; the new value is not checked against any
// enumeration. An id that matches nothing reports modifiedCount 0.
func (h *ListingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}

	count, err := h.Store.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed listing id"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"modifiedCount": count})
	}
}

// GET /featured-foods
func (h *ListingHandler) FeaturedFoods(c *gin.Context) {
	filter, sort := query.Featured()

	listings, err := h.Store.Find(c.Request.Context(), filter, sort, featuredLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GET /manage-foods
// Ownership is the donorEmail the donor wrote at creation time, matched
// against the verified token's email claim.
func (h *ListingHandler) ManageFoods(c *gin.Context) {
	subject := middleware.SubjectFrom(c)
	if subject == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
		return
	}

	listings, err := h.Store.Find(c.Request.Context(), query.ByDonor(subject.Email), nil, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}
