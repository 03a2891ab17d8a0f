package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// ForecastRepository reads daily forecasts written by the forecasting
// subsystem
type ForecastRepository struct {
	collection *mongo.Collection
}

// NewForecastRepository creates a repository on the daily_forecasts collection
func NewForecastRepository(db *mongo.Database) *ForecastRepository {
	repo := &ForecastRepository{collection: db.Collection("daily_forecasts")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *ForecastRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "forecastDate", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Save upserts the forecast for its date
func (r *ForecastRepository) Save(ctx context.Context, forecast *domain.DailyForecast) error {
	opts := options.Update().SetUpsert(true)
	filter := bson.M{"forecastDate": forecast.ForecastDate}
	update := bson.M{"$set": forecast}

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByDate returns the forecast for a date, or nil when none exists
func (r *ForecastRepository) FindByDate(ctx context.Context, forecastDate string) (*domain.DailyForecast, error) {
	var forecast domain.DailyForecast
	err := r.collection.FindOne(ctx, bson.M{"forecastDate": forecastDate}).Decode(&forecast)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &forecast, nil
}
