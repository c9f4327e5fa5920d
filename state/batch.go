package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrinvest/carteira/api"
)

// BatchResult reports a batch mutation item by item. Batches are sequential
// and never rolled back: a failure partway through leaves the earlier items
// applied, and the result makes that visible instead of collapsing it into
// a single boolean.
type BatchResult struct {
	Deleted []int64
	Failed  []int64
	errs    []error
}

// Err aggregates the per-item failures, nil when everything succeeded.
func (r BatchResult) Err() error {
	return errors.Join(r.errs...)
}

// DeleteClients removes the given clients one by one. An unauthorized
// response aborts the remainder (the session is gone anyway); any other
// failure is recorded and the batch moves on.
func (l *Loader) DeleteClients(ctx context.Context, ids []int64) BatchResult {
	var res BatchResult
	for i, id := range ids {
		err := l.api.AdminDeleteClient(ctx, id)
		if err == nil {
			res.Deleted = append(res.Deleted, id)
			continue
		}
		res.Failed = append(res.Failed, id)
		res.errs = append(res.errs, fmt.Errorf("client %d: %w", id, err))
		if api.IsUnauthorized(err) {
			res.Failed = append(res.Failed, ids[i+1:]...)
			break
		}
	}
	if len(res.Deleted) > 0 {
		l.Invalidate()
	}
	return res
}
