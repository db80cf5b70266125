package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/gristry/internal/grist"
	"github.com/xxxsen/gristry/internal/model"
)

func record(id int64, fields string) grist.Record {
	return grist.Record{ID: id, Fields: json.RawMessage(fields)}
}

func TestMapTablesJoinsItemsAndTags(t *testing.T) {
	itemRows := []grist.Record{
		record(1, `{"ID2":"A","Name":"anvil","Description":"heavy","Tag":10,"CreatedAt":1000,"UpdatedAt":1000}`),
	}
	tagRows := []grist.Record{
		record(10, `{"ID2":"T1","CreatedAt":900,"UpdatedAt":900}`),
	}

	items, tags := mapTables(itemRows, tagRows)

	require.Len(t, items, 1)
	require.Equal(t, model.Item{
		ID:          "A",
		Name:        "anvil",
		Description: "heavy",
		Type:        model.TypeItem,
		Tags:        []string{"T1"},
		CreatedAt:   "1970-01-01T00:16:40.000Z",
		UpdatedAt:   "1970-01-01T00:16:40.000Z",
	}, items[0])

	require.Len(t, tags, 1)
	require.Equal(t, model.Tag{
		ID:        "T1",
		Link:      &model.TagLink{ID: "A", Type: model.TypeItem},
		CreatedAt: "1970-01-01T00:15:00.000Z",
		UpdatedAt: "1970-01-01T00:15:00.000Z",
	}, tags[0])
}

func TestMapTablesItemWithoutMatchingTag(t *testing.T) {
	itemRows := []grist.Record{
		record(1, `{"ID2":"A","Name":"anvil","Tag":99,"CreatedAt":1000,"UpdatedAt":1000}`),
	}
	tagRows := []grist.Record{
		record(10, `{"ID2":"T1","CreatedAt":900,"UpdatedAt":900}`),
	}

	items, tags := mapTables(itemRows, tagRows)

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Tags)
	require.Empty(t, items[0].Tags)

	require.Len(t, tags, 1)
	require.Nil(t, tags[0].Link)
}

func TestMapTablesMalformedFieldsDegradeSilently(t *testing.T) {
	itemRows := []grist.Record{
		record(1, `not json at all`),
		record(2, `{"ID2":"B","Tag":"mistyped"}`),
	}

	items, _ := mapTables(itemRows, nil)

	require.Len(t, items, 2)
	require.Equal(t, "", items[0].ID)
	require.Empty(t, items[0].Tags)
	require.Equal(t, "1970-01-01T00:00:00.000Z", items[0].CreatedAt)
}

func TestIsoFromEpoch(t *testing.T) {
	tests := []struct {
		name string
		sec  int64
		want string
	}{
		{name: "epoch zero", sec: 0, want: "1970-01-01T00:00:00.000Z"},
		{name: "minutes precision", sec: 1000, want: "1970-01-01T00:16:40.000Z"},
		{name: "recent", sec: 1700000000, want: "2023-11-14T22:13:20.000Z"},
		{name: "max int32", sec: 2147483647, want: "2038-01-19T03:14:07.000Z"},
		{name: "negative", sec: -1, want: "1969-12-31T23:59:59.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, isoFromEpoch(tt.sec))
		})
	}
}
