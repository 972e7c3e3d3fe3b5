package appointments

import (
	"context"
	"errors"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointments),
	}
}

// Insert assigns a fresh ObjectID to appointment and returns its hex form.
func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now().UTC()
	}

	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		appointment.ID = primitive.NilObjectID
		return "", mapMongoError(err, exceptions.ErrMongoDBInsertDocument)
	}
	return appointment.ID.Hex(), nil
}

// UpdateMeetingLink is a single $set so readers see the old or the new link.
func (repo *AppointmentMongoRepository) UpdateMeetingLink(ctx context.Context, appointmentID, meetingLink string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrAppointmentNotFound(err, appointmentID)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"meetingLink": meetingLink,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return mapMongoError(err, exceptions.ErrMongoDBUpdateDocument)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrAppointmentNotFound(err, appointmentID)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrAppointmentNotFound(err, appointmentID)
		}
		return nil, mapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}
	return &appointment, nil
}

func mapMongoError(err error, fallback func(error) *exceptions.CustomError) error {
	if database.IsMongoUnavailable(err) {
		return exceptions.ErrStorageUnavailable(err)
	}
	return fallback(err)
}
