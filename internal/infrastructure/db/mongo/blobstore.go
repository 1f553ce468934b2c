package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blobCollection = "blobs"

// BlobStore adapts a MongoDB collection to the core's key/value contract.
// Each blob is one document: {_id: <key>, value: <json string>}. Mongo is the
// alternative backend to Redis; the document model is deliberately not used
// beyond the key/value envelope so both backends stay interchangeable.
type BlobStore struct {
	coll *mongo.Collection
}

// NewBlobStore wraps the blobs collection of the given database.
func NewBlobStore(db *mongo.Database) *BlobStore {
	return &BlobStore{coll: db.Collection(blobCollection)}
}

type blobDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc blobDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("blob get %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		blobDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("blob set %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("blob remove %s: %w", key, err)
	}
	return nil
}

// Ping reports store health for the readiness probe.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, nil)
}
