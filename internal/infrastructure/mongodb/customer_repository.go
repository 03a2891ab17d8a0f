package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wms-platform/workforce-service/internal/domain"
)

// CustomerConfigRepository reads merchant operational configurations
type CustomerConfigRepository struct {
	collection *mongo.Collection
}

// NewCustomerConfigRepository creates a repository on the customer_configs
// collection
func NewCustomerConfigRepository(db *mongo.Database) *CustomerConfigRepository {
	repo := &CustomerConfigRepository{collection: db.Collection("customer_configs")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *CustomerConfigRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// FindAllActive returns every active customer config, ordered by customer ID
// so calculation runs are deterministic
func (r *CustomerConfigRepository) FindAllActive(ctx context.Context) ([]domain.CustomerConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "customerId", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []domain.CustomerConfig
	err = cursor.All(ctx, &customers)
	return customers, err
}

// FindByCustomerID returns one customer config, or nil when none exists
func (r *CustomerConfigRepository) FindByCustomerID(ctx context.Context, customerID string) (*domain.CustomerConfig, error) {
	var customer domain.CustomerConfig
	err := r.collection.FindOne(ctx, bson.M{"customerId": customerID}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
