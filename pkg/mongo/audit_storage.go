package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
)

// AuditStorage implements audit.Storage on the "audit_log" collection.
// Entries are insert-only; there is no update or delete path.
type AuditStorage struct {
	coll *mongo.Collection
}

// NewAuditStorage creates the storage over the given database.
func NewAuditStorage(db *mongo.Database) *AuditStorage {
	return &AuditStorage{coll: db.Collection("audit_log")}
}

// EnsureIndexes creates the index backing per-notification trail queries.
func (s *AuditStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "notification_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *AuditStorage) Store(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *AuditStorage) Query(ctx context.Context, criteria audit.Criteria) ([]audit.Entry, error) {
	filter := auditFilter(criteria)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if criteria.Limit > 0 {
		opts.SetLimit(int64(criteria.Limit))
	}
	if criteria.Offset > 0 {
		opts.SetSkip(int64(criteria.Offset))
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	var entries []audit.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return entries, nil
}

func (s *AuditStorage) Count(ctx context.Context, criteria audit.Criteria) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, auditFilter(criteria))
	if err != nil {
		return 0, errors.Join(ErrStorageFailure, err)
	}
	return n, nil
}

func auditFilter(c audit.Criteria) bson.M {
	filter := bson.M{}
	if c.NotificationID != "" {
		filter["notification_id"] = c.NotificationID
	}
	if c.RecipientID != "" {
		filter["recipient_id"] = c.RecipientID
	}
	if c.Channel != "" {
		filter["channel"] = c.Channel
	}
	if c.Event != "" {
		filter["event"] = c.Event
	}
	created := bson.M{}
	if !c.From.IsZero() {
		created["$gte"] = c.From
	}
	if !c.To.IsZero() {
		created["$lte"] = c.To
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}
	return filter
}
