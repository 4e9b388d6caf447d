package capgains

import (
	"errors"

	"github.com/tsawler/capgains/tables"
)

// ErrNoPages reports an empty PDF. It is fatal and returned immediately.
var ErrNoPages = errors.New("no pages found in PDF")

// ErrSummaryNotFound reports that the scheme-level summary row is missing
// from the first page. The summary is the one structure every statement must
// have, so the whole parse aborts.
var ErrSummaryNotFound = tables.ErrNoSummaryRow
