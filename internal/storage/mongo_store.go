package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each blob as one document in a "blobs" collection. The blob
// body stays JSON-encoded so the persistence contract is identical to the
// file store.
type MongoStore struct {
	col *mongo.Collection
}

type blobDoc struct {
	Name      string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &MongoStore{col: client.Database(database).Collection("blobs")}, nil
}

func (s *MongoStore) Load(ctx context.Context, name string, v any) error {
	var doc blobDoc
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(doc.Data, v)
}

func (s *MongoStore) Save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.col.UpdateOne(
		ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"data": data, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	return err
}
