package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dispatchkit/dispatchkit/pkg/recipient"
)

// contactDoc is the persisted contact record for one recipient.
type contactDoc struct {
	RecipientID string `bson:"_id"`
	Email       string `bson:"email,omitempty"`
	Phone       string `bson:"phone,omitempty"`
}

// tokenDoc is the persisted device token. The compound _id keeps one
// document per (recipient, token) pair.
type tokenDoc struct {
	ID         tokenKey              `bson:"_id"`
	Class      recipient.DeviceClass `bson:"class"`
	Active     bool                  `bson:"active"`
	LastUsedAt time.Time             `bson:"last_used_at"`
	CreatedAt  time.Time             `bson:"created_at"`
}

type tokenKey struct {
	RecipientID string `bson:"recipient_id"`
	Token       string `bson:"token"`
}

// Directory implements recipient.Directory and recipient.TokenStore over
// the "recipients" and "device_tokens" collections.
type Directory struct {
	contacts *mongo.Collection
	tokens   *mongo.Collection
}

// NewDirectory creates the directory over the given database.
func NewDirectory(db *mongo.Database) *Directory {
	return &Directory{
		contacts: db.Collection("recipients"),
		tokens:   db.Collection("device_tokens"),
	}
}

func (d *Directory) EmailAddress(ctx context.Context, recipientID string) (string, error) {
	var doc contactDoc
	err := d.contacts.FindOne(ctx, bson.M{"_id": recipientID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", recipient.ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrStorageFailure, err)
	}
	return doc.Email, nil
}

func (d *Directory) PhoneNumber(ctx context.Context, recipientID string) (string, error) {
	var doc contactDoc
	err := d.contacts.FindOne(ctx, bson.M{"_id": recipientID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", recipient.ErrNotFound
	}
	if err != nil {
		return "", errors.Join(ErrStorageFailure, err)
	}
	return doc.Phone, nil
}

func (d *Directory) ActiveTokens(ctx context.Context, recipientID string) ([]recipient.DeviceToken, error) {
	cursor, err := d.tokens.Find(ctx, bson.M{
		"_id.recipient_id": recipientID,
		"active":           true,
	})
	if err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	var docs []tokenDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Join(ErrStorageFailure, err)
	}

	tokens := make([]recipient.DeviceToken, 0, len(docs))
	for _, doc := range docs {
		tokens = append(tokens, recipient.DeviceToken{
			RecipientID: doc.ID.RecipientID,
			Token:       doc.ID.Token,
			Class:       doc.Class,
			Active:      doc.Active,
			LastUsedAt:  doc.LastUsedAt,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return tokens, nil
}

// SetContact upserts a recipient's contact addresses.
func (d *Directory) SetContact(ctx context.Context, recipientID, email, phone string) error {
	_, err := d.contacts.UpdateOne(ctx,
		bson.M{"_id": recipientID},
		bson.M{"$set": bson.M{"email": email, "phone": phone}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (d *Directory) Save(ctx context.Context, token recipient.DeviceToken) error {
	if token.RecipientID == "" || token.Token == "" {
		return recipient.ErrInvalidToken
	}

	key := tokenKey{RecipientID: token.RecipientID, Token: token.Token}
	_, err := d.tokens.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{
			"$set": bson.M{
				"class":        token.Class,
				"active":       token.Active,
				"last_used_at": token.LastUsedAt,
			},
			"$setOnInsert": bson.M{"created_at": token.CreatedAt},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (d *Directory) Deactivate(ctx context.Context, recipientID, token string) error {
	key := tokenKey{RecipientID: recipientID, Token: token}
	res, err := d.tokens.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if res.MatchedCount == 0 {
		return recipient.ErrTokenNotFound
	}
	return nil
}

func (d *Directory) Touch(ctx context.Context, recipientID, token string, at time.Time) error {
	key := tokenKey{RecipientID: recipientID, Token: token}
	res, err := d.tokens.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"last_used_at": at}},
	)
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	if res.MatchedCount == 0 {
		return recipient.ErrTokenNotFound
	}
	return nil
}
