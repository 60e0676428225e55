package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoCollection holds one document per key.
const mongoCollection = "cart_kv"

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoKV stores values as documents keyed by _id.
type MongoKV struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoKV connects to MongoDB and verifies the connection with a ping.
func NewMongoKV(ctx context.Context, uri, dbName string) (*MongoKV, error) {
	if uri == "" || dbName == "" {
		return nil, errors.New("mongo uri and database must not be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoKV{
		client: client,
		coll:   client.Database(dbName).Collection(mongoCollection),
	}, nil
}

func (m *MongoKV) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return doc.Value, true, nil
}

func (m *MongoKV) Set(ctx context.Context, key, value string) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Close disconnects the client, giving in-flight operations a few seconds.
func (m *MongoKV) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
