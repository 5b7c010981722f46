package repository

import (
	"context"
	"errors"
	"testing"
)

// A repository with no collection still rejects malformed ids, proving the
// validation runs before any store call.
func TestFindByIDMalformed(t *testing.T) {
	r := &ListingRepository{}

	for _, id := range []string{"", "not-hex", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := r.FindByID(context.Background(), id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("FindByID(%q) err = %v, want ErrInvalidID", id, err)
		}
	}
}

func TestUpdateStatusMalformedID(t *testing.T) {
	r := &ListingRepository{}

	count, err := r.UpdateStatus(context.Background(), "not-an-object-id", "requested")
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID", err)
	}
	if count != 0 {
		t.Errorf("modified count = %d, want 0", count)
	}
}
