package mongodb

import (
	"context"
	"fmt"

	"Peerpulse/internal/core/messages"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messagesCollection = "messages"

type messageDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	To      string             `bson:"to"`
	From    string             `bson:"from"`
	Message string             `bson:"message"`
	Time    string             `bson:"time"`
}

func (d *messageDocument) toMessage() *messages.Message {
	return &messages.Message{
		ID:      d.ID.Hex(),
		To:      d.To,
		From:    d.From,
		Message: d.Message,
		Time:    d.Time,
	}
}

type messageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a MongoDB-backed message repository
func NewMessageRepository(db *mongo.Database) messages.Repository {
	return &messageRepository{collection: db.Collection(messagesCollection)}
}

// ListForUser returns the user's conversations in insertion order
func (r *messageRepository) ListForUser(ctx context.Context, userID string) ([]*messages.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from": userID},
		bson.M{"to": userID},
	}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []messageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	out := make([]*messages.Message, len(docs))
	for i := range docs {
		out[i] = docs[i].toMessage()
	}
	return out, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *messages.Message) error {
	doc := messageDocument{
		ID:      primitive.NewObjectID(),
		To:      msg.To,
		From:    msg.From,
		Message: msg.Message,
		Time:    msg.Time,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	msg.ID = doc.ID.Hex()
	return nil
}
