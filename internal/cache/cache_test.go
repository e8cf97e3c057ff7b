package cache

import (
	"context"
	"testing"

	"pitchhub/internal/models"
)

// A nil Listing is the documented "cache disabled" handle; every method must
// be a safe no-op on it.
func TestNilListingIsNoOp(t *testing.T) {
	var l *Listing
	ctx := context.Background()

	if _, ok := l.GetApproved(ctx); ok {
		t.Error("Nil listing reported a cache hit")
	}
	l.SetApproved(ctx, []models.Pitch{{Name: "Nimbus"}})
	l.Invalidate(ctx)
}
