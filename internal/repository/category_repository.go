package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/NazirHussain1/inkwell-backend/model"
)

type CategoryRepository struct {
	categories *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{categories: db.Collection("categories")}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	cur, err := r.categories.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var cat model.Category
	err := r.categories.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
