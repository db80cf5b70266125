package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/xxxsen/gristry/internal/grist"
)

// maxTables bounds the cache; the document only holds a handful of tables.
const maxTables = 16

// Wrap memoizes FetchTable results per table name for ttl. Concurrent
// fetches of the same table share one underlying call. Errors are never
// cached. ttl<=0 disables caching entirely.
func Wrap(next grist.TableFetcher, ttl time.Duration) grist.TableFetcher {
	if next == nil || ttl <= 0 {
		return next
	}
	return &tableCache{
		next:  next,
		store: expirable.NewLRU[string, []grist.Record](maxTables, nil, ttl),
	}
}

type tableCache struct {
	next  grist.TableFetcher
	store *expirable.LRU[string, []grist.Record]
	group singleflight.Group
}

func (c *tableCache) FetchTable(ctx context.Context, table string) ([]grist.Record, error) {
	if rows, ok := c.store.Get(table); ok {
		return rows, nil
	}
	value, err, _ := c.group.Do(table, func() (interface{}, error) {
		// Another caller may have refreshed while we waited on the flight.
		if rows, ok := c.store.Get(table); ok {
			return rows, nil
		}
		// The leader's request may be aborted while other callers still
		// wait on this flight, so detach from its cancellation.
		rows, err := c.next.FetchTable(context.WithoutCancel(ctx), table)
		if err != nil {
			return nil, err
		}
		c.store.Add(table, rows)
		logutil.GetLogger(ctx).Debug("table cache refreshed",
			zap.String("table", table),
			zap.Int("rows", len(rows)),
		)
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]grist.Record), nil
}
