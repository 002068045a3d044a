package services

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildFilter(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query ListQuery
		want  bson.M
	}{
		{
			name:  "empty query matches everything",
			query: ListQuery{},
			want:  bson.M{},
		},
		{
			name:  "category only",
			query: ListQuery{Category: "Food"},
			want:  bson.M{"category": "Food"},
		},
		{
			name:  "start date only",
			query: ListQuery{StartDate: timePtr(start)},
			want:  bson.M{"date": bson.M{"$gte": start}},
		},
		{
			name:  "end date only",
			query: ListQuery{EndDate: timePtr(end)},
			want:  bson.M{"date": bson.M{"$lte": end}},
		},
		{
			name:  "both bounds",
			query: ListQuery{StartDate: timePtr(start), EndDate: timePtr(end)},
			want:  bson.M{"date": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name:  "category and range conjunction",
			query: ListQuery{Category: "Travel", StartDate: timePtr(start), EndDate: timePtr(end)},
			want: bson.M{
				"category": "Travel",
				"date":     bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			name:  "unknown category passes through",
			query: ListQuery{Category: "NotACategory"},
			want:  bson.M{"category": "NotACategory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildFilter(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		want  bson.D
	}{
		{
			name:  "defaults to date descending",
			query: ListQuery{},
			want:  bson.D{{Key: "date", Value: -1}},
		},
		{
			name:  "ascending order",
			query: ListQuery{SortBy: "amount", Order: "asc"},
			want:  bson.D{{Key: "amount", Value: 1}},
		},
		{
			name:  "explicit descending",
			query: ListQuery{SortBy: "amount", Order: "desc"},
			want:  bson.D{{Key: "amount", Value: -1}},
		},
		{
			name:  "unrecognized order falls back to descending",
			query: ListQuery{SortBy: "category", Order: "sideways"},
			want:  bson.D{{Key: "category", Value: -1}},
		},
		{
			name:  "unknown sort field passes through",
			query: ListQuery{SortBy: "notAField"},
			want:  bson.D{{Key: "notAField", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSort(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildSort() = %v, want %v", got, tt.want)
			}
		})
	}
}
