package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// PlanRepository persists calculated workforce plans. Plans are keyed by
// forecast date; recalculating a date replaces the stored plan.
type PlanRepository struct {
	collection *mongo.Collection
}

// NewPlanRepository creates a PlanRepository on the workforce_plans collection
func NewPlanRepository(db *mongo.Database) *PlanRepository {
	repo := &PlanRepository{collection: db.Collection("workforce_plans")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *PlanRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "forecastDate", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "planId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Save upserts the plan for its forecast date
func (r *PlanRepository) Save(ctx context.Context, plan *domain.WorkforcePlan) error {
	opts := options.Update().SetUpsert(true)
	filter := bson.M{"forecastDate": plan.ForecastDate}
	update := bson.M{"$set": plan}

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByDate returns the plan for a forecast date, or nil when none exists
func (r *PlanRepository) FindByDate(ctx context.Context, forecastDate string) (*domain.WorkforcePlan, error) {
	var plan domain.WorkforcePlan
	err := r.collection.FindOne(ctx, bson.M{"forecastDate": forecastDate}).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindRecent returns the most recently calculated plans, newest first
func (r *PlanRepository) FindRecent(ctx context.Context, limit int) ([]*domain.WorkforcePlan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*domain.WorkforcePlan
	err = cursor.All(ctx, &plans)
	return plans, err
}
