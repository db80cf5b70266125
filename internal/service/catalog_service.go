package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/xxxsen/gristry/internal/grist"
	"github.com/xxxsen/gristry/internal/model"
)

const (
	tableItems = "Items"
	tableTags  = "Tags"
)

// CatalogService projects the two backing tables onto the public item/tag
// model. It holds no state of its own; freshness is whatever the injected
// fetcher (usually the TTL cache) provides.
type CatalogService struct {
	tables grist.TableFetcher
}

func NewCatalogService(tables grist.TableFetcher) *CatalogService {
	return &CatalogService{tables: tables}
}

// ItemQuery carries the raw optional query values; nil means the parameter
// was absent and contributes no filter.
type ItemQuery struct {
	IDs  *string
	Tags *string
}

type TagQuery struct {
	IDs *string
}

func (s *CatalogService) ListItems(ctx context.Context, q ItemQuery) ([]model.Item, error) {
	itemRows, tagRows, err := s.fetchTables(ctx)
	if err != nil {
		return nil, err
	}
	items, _ := mapTables(itemRows, tagRows)
	preds := make([]predicate[model.Item], 0, 2)
	if q.IDs != nil {
		preds = append(preds, itemIDIn{set: splitCSV(*q.IDs)})
	}
	if q.Tags != nil {
		preds = append(preds, itemTagIn{set: splitCSV(*q.Tags)})
	}
	return filterAll(items, preds), nil
}

func (s *CatalogService) ListTags(ctx context.Context, q TagQuery) ([]model.Tag, error) {
	itemRows, tagRows, err := s.fetchTables(ctx)
	if err != nil {
		return nil, err
	}
	_, tags := mapTables(itemRows, tagRows)
	var preds []predicate[model.Tag]
	if q.IDs != nil {
		preds = append(preds, tagIDIn{set: splitCSV(*q.IDs)})
	}
	return filterAll(tags, preds), nil
}

// fetchTables pulls both tables concurrently; failure of either aborts the
// whole request.
func (s *CatalogService) fetchTables(ctx context.Context) (itemRows, tagRows []grist.Record, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.tables.FetchTable(gctx, tableItems)
		if err != nil {
			return fmt.Errorf("items table: %w", err)
		}
		itemRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.tables.FetchTable(gctx, tableTags)
		if err != nil {
			return fmt.Errorf("tags table: %w", err)
		}
		tagRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return itemRows, tagRows, nil
}
