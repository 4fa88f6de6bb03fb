package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 5 * time.Second

type snapshotDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoStore keeps snapshots as {_id: key, value: raw} documents. It is used
// when the engine runs server-side next to the marketplace database.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a store over the given collection.
func NewMongoStore(client *mongo.Client, db, coll string) *MongoStore {
	return &MongoStore{coll: client.Database(db).Collection(coll)}
}

// NewMongoClient connects a Mongo client and verifies it with a ping.
func NewMongoClient(url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

func (m *MongoStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	var doc snapshotDoc
	if err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		return nil, false
	}
	return doc.Value, true
}

func (m *MongoStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	_, err := m.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *MongoStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
