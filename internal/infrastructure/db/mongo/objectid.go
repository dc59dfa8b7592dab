package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/docuvault/docstore/internal/core/domain"
)

// parseID converts the external hex identifier into a store-native ObjectID.
// A malformed string is a client error (domain.ErrInvalidID), not a
// not-found: the two must stay distinguishable.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// storeErr tags an unexpected driver error as a store-availability failure
// while keeping the original cause in the chain.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
