package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"expense-api/models"
)

// ListQuery holds the optional filter/sort parameters of a list request.
// Nil date bounds are not applied. SortBy and Category are passed to the
// store as-is, unknown values included.
type ListQuery struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	Order     string
}

type ExpenseService struct {
	coll *mongo.Collection
}

func NewExpenseService(coll *mongo.Collection) *ExpenseService {
	return &ExpenseService{coll: coll}
}

// buildFilter builds the conjunction of category match and inclusive date
// range from whichever parameters are present.
func buildFilter(q ListQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.StartDate != nil || q.EndDate != nil {
		dateRange := bson.M{}
		if q.StartDate != nil {
			dateRange["$gte"] = *q.StartDate
		}
		if q.EndDate != nil {
			dateRange["$lte"] = *q.EndDate
		}
		filter["date"] = dateRange
	}
	return filter
}

// buildSort builds a single-field sort. SortBy defaults to date; any order
// value other than "asc" sorts descending.
func buildSort(q ListQuery) bson.D {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "date"
	}
	dir := -1
	if q.Order == "asc" {
		dir = 1
	}
	return bson.D{{Key: sortBy, Value: dir}}
}

// List returns every expense matching the query, sorted as requested.
func (s *ExpenseService) List(ctx context.Context, q ListQuery) ([]models.Expense, error) {
	opts := options.Find().SetSort(buildSort(q))
	cursor, err := s.coll.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

// Create inserts a new expense. The store assigns the ID; createdAt and
// updatedAt are set here since the driver has no schema timestamps.
func (s *ExpenseService) Create(ctx context.Context, date time.Time, description, category string, amount float64) (*models.Expense, error) {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	expense := &models.Expense{
		ID:          bson.NewObjectID(),
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.coll.InsertOne(ctx, expense); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return expense, nil
}

// Update replaces the four mutable fields of an existing expense and
// refreshes updatedAt. A zero date keeps the stored record's date.
func (s *ExpenseService) Update(ctx context.Context, id string, date time.Time, description, category string, amount float64) (*models.Expense, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var existing models.Expense
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find expense %s: %w", id, err)
	}

	if date.IsZero() {
		date = existing.Date
	}

	update := bson.M{"$set": bson.M{
		"date":        date,
		"description": description,
		"category":    category,
		"amount":      amount,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Expense
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes an expense for good. No tombstone is kept.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return nil
}
