package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// NotificationStorage implements notification.Storage on a MongoDB
// collection.
type NotificationStorage struct {
	coll *mongo.Collection
}

// NewNotificationStorage creates the storage over the "notifications"
// collection of the given database.
func NewNotificationStorage(db *mongo.Database) *NotificationStorage {
	return &NotificationStorage{coll: db.Collection("notifications")}
}

// EnsureIndexes creates the indexes the query paths rely on: the retry sweep
// scans by status and next_retry_at, the unread list by recipient and
// read_at.
func (s *NotificationStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "next_retry_at", Value: 1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "read_at", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *NotificationStorage) Create(ctx context.Context, rec notification.Record) error {
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Join(notification.ErrDuplicateRecord, err)
		}
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (s *NotificationStorage) Get(ctx context.Context, id string) (*notification.Record, error) {
	var rec notification.Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notification.ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return &rec, nil
}

func (s *NotificationStorage) Update(ctx context.Context, rec notification.Record) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if res.MatchedCount == 0 {
		return notification.ErrRecordNotFound
	}
	return nil
}

func (s *NotificationStorage) ListDue(ctx context.Context, now time.Time, limit int) ([]notification.Record, error) {
	filter := bson.M{
		"status":        bson.M{"$in": []notification.Status{notification.StatusPending, notification.StatusFailed}},
		"next_retry_at": bson.M{"$ne": nil, "$lte": now},
		"$expr":         bson.M{"$lte": []string{"$retry_count", "$max_retries"}},
	}

	opts := options.Find().SetSort(bson.D{{Key: "next_retry_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	var records []notification.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return records, nil
}

func (s *NotificationStorage) ListUnread(ctx context.Context, recipientID string, limit int) ([]notification.Record, error) {
	filter := bson.M{
		"recipient_id": recipientID,
		"read_at":      nil,
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	var records []notification.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return records, nil
}

func (s *NotificationStorage) CountUnread(ctx context.Context, recipientID string) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{
		"recipient_id": recipientID,
		"read_at":      nil,
	})
	if err != nil {
		return 0, errors.Join(ErrStorageFailure, err)
	}
	return int(n), nil
}
