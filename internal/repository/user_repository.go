package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/NazirHussain1/inkwell-backend/model"
)

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

// Create inserts a new account. ErrDuplicate when username or email is taken.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash, bio string) (*model.User, error) {
	user := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Bio:          bio,
		CreatedAt:    time.Now().UTC(),
	}
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if isDupKey(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
