package service

import (
	"encoding/json"
	"time"

	"github.com/xxxsen/gristry/internal/grist"
	"github.com/xxxsen/gristry/internal/model"
)

// itemFields mirrors the Items table columns. Columns absent from a row
// simply stay at their zero value; the source is not validated.
type itemFields struct {
	ManualSort  float64 `json:"manualSort"`
	ID2         string  `json:"ID2"`
	Name        string  `json:"Name"`
	Description string  `json:"Description"`
	Tag         int64   `json:"Tag"`
	CreatedAt   int64   `json:"CreatedAt"`
	UpdatedAt   int64   `json:"UpdatedAt"`
}

type tagFields struct {
	ManualSort float64 `json:"manualSort"`
	ID2        string  `json:"ID2"`
	CreatedAt  int64   `json:"CreatedAt"`
	UpdatedAt  int64   `json:"UpdatedAt"`
}

func decodeFields[T any](raw json.RawMessage) T {
	var out T
	if len(raw) > 0 {
		// Unexpected shapes degrade to zero values rather than failing.
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

// mapTables projects the two raw tables onto the public model, resolving the
// item→tag reference and the tag→item back-link via the tag's numeric row id.
func mapTables(itemRows, tagRows []grist.Record) ([]model.Item, []model.Tag) {
	tagsByRef := make(map[int64]tagFields, len(tagRows))
	for _, rec := range tagRows {
		tagsByRef[rec.ID] = decodeFields[tagFields](rec.Fields)
	}

	itemIDByTagRef := make(map[int64]string, len(itemRows))
	decoded := make([]itemFields, 0, len(itemRows))
	for _, rec := range itemRows {
		fields := decodeFields[itemFields](rec.Fields)
		decoded = append(decoded, fields)
		if fields.Tag != 0 {
			itemIDByTagRef[fields.Tag] = fields.ID2
		}
	}

	items := make([]model.Item, 0, len(decoded))
	for _, fields := range decoded {
		tags := make([]string, 0, 1)
		if tag, ok := tagsByRef[fields.Tag]; ok {
			tags = append(tags, tag.ID2)
		}
		items = append(items, model.Item{
			ID:          fields.ID2,
			Name:        fields.Name,
			Description: fields.Description,
			Type:        model.TypeItem,
			Tags:        tags,
			CreatedAt:   isoFromEpoch(fields.CreatedAt),
			UpdatedAt:   isoFromEpoch(fields.UpdatedAt),
		})
	}

	tags := make([]model.Tag, 0, len(tagRows))
	for _, rec := range tagRows {
		fields := tagsByRef[rec.ID]
		var link *model.TagLink
		if itemID, ok := itemIDByTagRef[rec.ID]; ok {
			link = &model.TagLink{ID: itemID, Type: model.TypeItem}
		}
		tags = append(tags, model.Tag{
			ID:        fields.ID2,
			Link:      link,
			CreatedAt: isoFromEpoch(fields.CreatedAt),
			UpdatedAt: isoFromEpoch(fields.UpdatedAt),
		})
	}
	return items, tags
}

// isoFromEpoch renders source epoch seconds as an ISO-8601 UTC timestamp
// with millisecond precision.
func isoFromEpoch(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02T15:04:05.000Z")
}
