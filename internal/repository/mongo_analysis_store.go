package repository

import (
	"context"
	"fmt"
	"time"

	"SentientToken/internal/domain/models"
	applogger "SentientToken/pkg/logger"
	pkgmongo "SentientToken/pkg/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const analysesCollection = "market_analyses"

// MongoAnalysisStore implements AnalysisStore backed by a MongoDB
// collection. Records are append-only; nothing updates or deletes them.
type MongoAnalysisStore struct {
	client *pkgmongo.Client
	coll   *mongo.Collection
	logger *applogger.Logger
}

func NewMongoAnalysisStore(client *pkgmongo.Client) *MongoAnalysisStore {
	return &MongoAnalysisStore{
		client: client,
		coll:   client.Collection(analysesCollection),
	}
}

// SetLogger injects a structured logger.
func (s *MongoAnalysisStore) SetLogger(l *applogger.Logger) { s.logger = l }

func (s *MongoAnalysisStore) Insert(ctx context.Context, a *models.MarketAnalysis) error {
	start := time.Now()
	if _, err := s.coll.InsertOne(ctx, a); err != nil {
		if s.logger != nil {
			s.logger.Error("mongo insert analysis error",
				applogger.String("crypto_id", a.CryptoID),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("insert analysis: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("mongo insert analysis ok",
			applogger.String("crypto_id", a.CryptoID),
			applogger.String("analysis_type", a.AnalysisType),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return nil
}

func (s *MongoAnalysisStore) Latest(ctx context.Context, cryptoID string, limit int) ([]models.MarketAnalysis, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.coll.Find(ctx, bson.M{"crypto_id": cryptoID}, opts)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("mongo find analyses error",
				applogger.String("crypto_id", cryptoID),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("find analyses: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.MarketAnalysis, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode analyses: %w", err)
	}
	return out, nil
}

func (s *MongoAnalysisStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}
