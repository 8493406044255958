package repository

import (
	"context"
	"strings"
	"time"

	"github.com/modelhomeart/mhabackend/database"
	"github.com/modelhomeart/mhabackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoQuotes struct{}

func (MongoQuotes) col() *mongo.Collection { return database.OpenCollection("quote_requests") }

func (r MongoQuotes) Insert(ctx context.Context, q *models.QuoteRequest) error {
	_, err := r.col().InsertOne(ctx, q)
	return err
}

func (r MongoQuotes) List(ctx context.Context, f ListFilter) ([]models.QuoteRequest, int64, error) {
	filter := listFilterDoc(f)

	opts := options.Find().
		SetSkip(f.Skip()).
		SetLimit(int64(f.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.QuoteRequest, 0)
	for cursor.Next(ctx) {
		var q models.QuoteRequest
		if err := cursor.Decode(&q); err != nil {
			return nil, 0, err
		}
		items = append(items, q)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.col().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r MongoQuotes) Get(ctx context.Context, id string) (*models.QuoteRequest, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var q models.QuoteRequest
	if err := r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&q); err != nil {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (r MongoQuotes) UpdateStatus(ctx context.Context, id string, status models.QuoteRequestStatus) error {
	return updateStatus(ctx, r.col(), id, string(status))
}

type MongoContacts struct{}

func (MongoContacts) col() *mongo.Collection { return database.OpenCollection("contact_submissions") }

func (r MongoContacts) Insert(ctx context.Context, s *models.ContactSubmission) error {
	_, err := r.col().InsertOne(ctx, s)
	return err
}

func (r MongoContacts) List(ctx context.Context, f ListFilter) ([]models.ContactSubmission, int64, error) {
	filter := listFilterDoc(f)

	opts := options.Find().
		SetSkip(f.Skip()).
		SetLimit(int64(f.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.ContactSubmission, 0)
	for cursor.Next(ctx) {
		var s models.ContactSubmission
		if err := cursor.Decode(&s); err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.col().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r MongoContacts) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	return updateStatus(ctx, r.col(), id, string(status))
}

type MongoInquiries struct{}

func (MongoInquiries) col() *mongo.Collection { return database.OpenCollection("business_inquiries") }

func (r MongoInquiries) Insert(ctx context.Context, b *models.BusinessInquiry) error {
	_, err := r.col().InsertOne(ctx, b)
	return err
}

func (r MongoInquiries) List(ctx context.Context, f ListFilter) ([]models.BusinessInquiry, int64, error) {
	filter := listFilterDoc(f)

	opts := options.Find().
		SetSkip(f.Skip()).
		SetLimit(int64(f.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.BusinessInquiry, 0)
	for cursor.Next(ctx) {
		var b models.BusinessInquiry
		if err := cursor.Decode(&b); err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.col().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r MongoInquiries) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	return updateStatus(ctx, r.col(), id, string(status))
}

func listFilterDoc(f ListFilter) bson.M {
	filter := bson.M{}
	if status := strings.TrimSpace(f.Status); status != "" {
		filter["status"] = status
	}
	return filter
}

func updateStatus(ctx context.Context, col *mongo.Collection, id string, status string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
