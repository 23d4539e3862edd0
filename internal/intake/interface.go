package intake

import "context"

// UseCase defines the business logic interface for the intake domain.
type UseCase interface {
	// Parse turns one freeform line into a task descriptor plus its display labels.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Format renders already stored task fields as display labels.
	Format(ctx context.Context, input FormatInput) (FormatOutput, error)
}
