package interfaces

import (
	"context"
	"errors"

	"towquote/internal/models"
)

var ErrQuoteHoldNotFound = errors.New("quote hold not found")

// QuoteHoldRepository keeps issued quotes until checkout. Holds expire on
// their own; there is no explicit listing.
type QuoteHoldRepository interface {
	Save(ctx context.Context, hold *models.QuoteHold) error
	Get(ctx context.Context, id string) (*models.QuoteHold, error)
	Delete(ctx context.Context, id string) error
}
