package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// RosterRepository reads the rostered staff availability per date
type RosterRepository struct {
	collection *mongo.Collection
}

// NewRosterRepository creates a repository on the staff_rosters collection
func NewRosterRepository(db *mongo.Database) *RosterRepository {
	repo := &RosterRepository{collection: db.Collection("staff_rosters")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *RosterRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "rosterDate", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Save upserts the roster for its date
func (r *RosterRepository) Save(ctx context.Context, roster *domain.StaffRoster) error {
	opts := options.Update().SetUpsert(true)
	filter := bson.M{"rosterDate": roster.RosterDate}
	update := bson.M{"$set": roster}

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByDate returns the roster for a date, or nil when none exists
func (r *RosterRepository) FindByDate(ctx context.Context, rosterDate string) (*domain.StaffRoster, error) {
	var roster domain.StaffRoster
	err := r.collection.FindOne(ctx, bson.M{"rosterDate": rosterDate}).Decode(&roster)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &roster, nil
}
