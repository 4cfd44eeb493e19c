package repository

import (
	"context"
	"time"

	"userdir/internal/users/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Users *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, usersCollectionName string) *MongoRepository {
	return &MongoRepository{
		Users: db.Collection(usersCollectionName),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// Unique email index: the authoritative uniqueness guarantee. The
	// in-process duplicate check in the ingestion pipeline is an optimization
	// that can lose a race between concurrent requests; this index cannot.
	idxEmailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	}

	// Listing sorts newest-first
	idxCreatedAt := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_created_at"),
	}

	_, err := r.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{idxEmailUnique, idxCreatedAt})
	return err
}

func (r *MongoRepository) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) ListUsers(ctx context.Context, page, size int) ([]*model.User, int64, error) {
	filter := bson.M{}

	total, err := r.Users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(size))

	cursor, err := r.Users.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *MongoRepository) DeleteUser(ctx context.Context, id string) error {
	res, err := r.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) SetNotificationState(ctx context.Context, id, state, lastErr string) error {
	set := bson.M{
		"notification_state": state,
		"updated_at":         time.Now(),
	}
	update := bson.M{"$set": set}
	if lastErr != "" {
		set["notification_error"] = lastErr
	} else {
		update["$unset"] = bson.M{"notification_error": ""}
	}

	res, err := r.Users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
