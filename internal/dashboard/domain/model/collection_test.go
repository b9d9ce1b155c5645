package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionInfo_PropertyNames(t *testing.T) {
	info := CollectionInfo{
		Name: "Article",
		Properties: []Property{
			{Name: "title"},
			{Name: "body"},
			{Name: "url"},
		},
	}
	assert.Equal(t, []string{"title", "body", "url"}, info.PropertyNames())
}

func TestCollectionInfo_PropertyNames_Empty(t *testing.T) {
	info := CollectionInfo{Name: "Empty"}
	assert.Empty(t, info.PropertyNames())
}

func TestSortDirective_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		directive *SortDirective
		want      bool
	}{
		{"nil directive", nil, false},
		{"missing property", &SortDirective{Order: "asc"}, false},
		{"asc", &SortDirective{Property: "title", Order: "asc"}, true},
		{"desc", &SortDirective{Property: "title", Order: "desc"}, true},
		{"uppercase", &SortDirective{Property: "title", Order: "DESC"}, true},
		{"unknown order", &SortDirective{Property: "title", Order: "sideways"}, false},
		{"empty order", &SortDirective{Property: "title"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.directive.IsValid())
		})
	}
}

func TestSortDirective_NormalizedOrder(t *testing.T) {
	assert.Equal(t, SortAscending, (*SortDirective)(nil).NormalizedOrder())
	assert.Equal(t, SortDescending, (&SortDirective{Property: "p", Order: "DESC"}).NormalizedOrder())
	assert.Equal(t, SortAscending, (&SortDirective{Property: "p", Order: "asc"}).NormalizedOrder())
}

func TestSchema_DecodeMissingClasses(t *testing.T) {
	var schema Schema
	require.NoError(t, json.Unmarshal([]byte(`{}`), &schema))
	assert.Empty(t, schema.Classes)
}

func TestGraphQLResponse_DecodeGetEnvelope(t *testing.T) {
	raw := `{"data":{"Get":{"Article":[{"title":"A","wordCount":120}]}}}`

	var resp GraphQLResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.NotNil(t, resp.Data)
	rows := resp.Data.Get["Article"]
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["title"])
	assert.Equal(t, float64(120), rows[0]["wordCount"])
	assert.Nil(t, resp.Data.Aggregate)
}

func TestGraphQLResponse_DecodeAggregateEnvelope(t *testing.T) {
	raw := `{"data":{"Aggregate":{"Article":[{"meta":{"count":42}}]}}}`

	var resp GraphQLResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.NotNil(t, resp.Data)
	buckets := resp.Data.Aggregate["Article"]
	require.Len(t, buckets, 1)
	assert.Equal(t, int64(42), buckets[0].Meta.Count)
}
