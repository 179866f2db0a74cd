package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

// Repository defines the interface for decision audit storage.
type Repository interface {
	SaveDecision(ctx context.Context, rec models.DecisionRecord) error
	CountActionsSince(ctx context.Context, since time.Time) (map[models.Action]int64, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "pricing_decisions",
	}, nil
}

// SaveDecision appends one pricing decision to the audit log.
func (r *MongoDBRepository) SaveDecision(ctx context.Context, rec models.DecisionRecord) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	if _, err := collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert decision record: %w", err)
	}
	return nil
}

// CountActionsSince groups audited decisions by action from the given time on.
func (r *MongoDBRepository) CountActionsSince(ctx context.Context, since time.Time) (map[models.Action]int64, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$action"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate decisions: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Action models.Action `bson:"_id"`
		Count  int64         `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode decision counts: %w", err)
	}

	counts := make(map[models.Action]int64, len(rows))
	for _, row := range rows {
		counts[row.Action] = row.Count
	}
	return counts, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
