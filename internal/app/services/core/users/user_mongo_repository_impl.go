package users

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUsers),
	}
}

// FindAll returns at most limit documents with _id rendered as a hex "id".
func (repo *UserMongoRepository) FindAll(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, storageError(err, exceptions.ErrMongoDBFindDocument)
	}
	defer cursor.Close(ctx)

	users := make([]map[string]interface{}, 0)
	for cursor.Next(ctx) {
		var document bson.M
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		users = append(users, toUserResponse(document))
	}
	if err := cursor.Err(); err != nil {
		return nil, storageError(err, exceptions.ErrMongoDBIterateDocuments)
	}
	return users, nil
}

func (repo *UserMongoRepository) Insert(ctx context.Context, document map[string]interface{}) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, bson.M(document))
	if err != nil {
		return "", storageError(err, exceptions.ErrMongoDBInsertDocument)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return objectID.Hex(), nil
}

func toUserResponse(document bson.M) map[string]interface{} {
	user := make(map[string]interface{}, len(document))
	for key, value := range document {
		if key == "_id" {
			if objectID, ok := value.(primitive.ObjectID); ok {
				user["id"] = objectID.Hex()
			} else {
				user["id"] = value
			}
			continue
		}
		user[key] = value
	}
	return user
}

func storageError(err error, fallback func(error) *exceptions.CustomError) error {
	if database.IsMongoUnavailable(err) {
		return exceptions.ErrStorageUnavailable(err)
	}
	return fallback(err)
}
