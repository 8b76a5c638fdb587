package mood

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// authorizeView checks that the caller may read authorID's records.
// Authors read their own records and administrators read anyone's.
func authorizeView(ctx context.Context, authorID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if authorID == uuid.Nil {
		return domain.NewValidationError("author_id", "required")
	}
	if callerID != authorID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
