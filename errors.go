package happywhale

import (
	"github.com/seawatch/happywhale/internal/db"
	"github.com/seawatch/happywhale/internal/domain"
	"github.com/seawatch/happywhale/internal/transport/critterspot"
)

// Sentinel errors re-exported from the internal layers.
// Use errors.Is() to check.
var (
	ErrMissingParameter = domain.ErrMissingParameter
	ErrInvalidVariant   = domain.ErrInvalidVariant
	ErrInvalidParameter = domain.ErrInvalidParameter
	ErrUnexpectedStatus = domain.ErrUnexpectedStatus
	ErrDatabaseNotFound = db.ErrDatabaseNotFound
)

// StatusError carries the status code and body of a rejected submission.
// Use errors.As() to extract it.
type StatusError = critterspot.StatusError
