package driven

import (
	"context"

	"github.com/custodia-labs/finsync/internal/core/domain"
)

// Notifier delivers user-facing notices to the presentation layer.
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
}
