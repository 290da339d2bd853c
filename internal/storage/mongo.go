package storage

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// transactionDoc is the persisted document shape.
type transactionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Amount      float64            `bson:"amount"`
	Date        string             `bson:"date"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
}

func (d transactionDoc) toCore() core.Transaction {
	return core.Transaction{
		ID:          d.ID.Hex(),
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		Category:    d.Category,
	}
}

// MongoStore implements TransactionStore on a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// ConnectMongo establishes and pings a MongoDB connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	slog.DebugContext(ctx, "Connecting to MongoDB", "uri", uri)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	slog.InfoContext(ctx, "Established MongoDB connection")
	return client, nil
}

func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{coll: client.Database(database).Collection(collection)}
}

func (s *MongoStore) Insert(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	doc := transactionDoc{
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		Category:    tx.Category,
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return core.Transaction{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	tx.ID = oid.Hex()
	return tx, nil
}

func (s *MongoStore) List(ctx context.Context) ([]core.Transaction, error) {
	sortSpec := bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(sortSpec))
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	var docs []transactionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	out := make([]core.Transaction, len(docs))
	for i, d := range docs {
		out[i] = d.toCore()
	}
	return out, nil
}

func (s *MongoStore) Replace(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(tx.ID)
	if err != nil {
		return core.Transaction{}, ErrNotFound
	}
	doc := transactionDoc{
		ID:          oid,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		Category:    tx.Category,
	}
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("replace transaction %s: %w", tx.ID, err)
	}
	if res.MatchedCount == 0 {
		return core.Transaction{}, ErrNotFound
	}
	return tx, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot match anything; deletion of an absent id
		// is a no-op.
		return false, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
