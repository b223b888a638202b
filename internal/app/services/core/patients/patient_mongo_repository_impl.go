package patients

import (
	"context"
	"errors"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewPatientMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.PatientRepository {
	return &patientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
		Log:        logger,
	}
}

func (repo *patientMongoRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("patientMongoRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		repo.Log.Error("patientMongoRepository.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	patientID := result.InsertedID.(primitive.ObjectID).Hex()
	repo.Log.Info("patientMongoRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patientID, nil
}

func (repo *patientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("patientMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		repo.Log.Warn("patientMongoRepository.FindByID id is not an ObjectID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	}

	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("patientMongoRepository.FindByID error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *patientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return repo.find(ctx, "FindAll", bson.M{})
}

func (repo *patientMongoRepository) FindByFilter(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	return repo.find(ctx, "FindByFilter", filter.ConvertToBsonM())
}

func (repo *patientMongoRepository) find(ctx context.Context, operation string, filter bson.M) ([]models.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	repo.Log.Info("patientMongoRepository."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFilterKey, filter),
	)

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		repo.Log.Error("patientMongoRepository."+operation+" error executing find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	patients := []models.Patient{}
	err = cursor.All(ctx, &patients)
	if err != nil {
		repo.Log.Error("patientMongoRepository."+operation+" error iterating cursor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	repo.Log.Info("patientMongoRepository."+operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCount, len(patients)),
	)
	return patients, nil
}

// UpdateByID applies changes with a single find-and-modify and returns the document as
// it is after the write. Concurrent updates of one patient are last write wins.
func (repo *patientMongoRepository) UpdateByID(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	fields := changes.ConvertToBsonM()
	repo.Log.Info("patientMongoRepository.UpdateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Any(constvars.LoggingFieldsKey, fields),
	)

	if len(fields) == 0 {
		return repo.FindByID(ctx, patientID)
	}

	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Patient
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(false)
	err = repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields}, opts).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		repo.Log.Error("patientMongoRepository.UpdateByID error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}

	repo.Log.Info("patientMongoRepository.UpdateByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &patient, nil
}
