package contracts

import (
	"context"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.Patient) (*responses.Patient, error)
	FindAll(ctx context.Context) ([]responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	Search(ctx context.Context, request *requests.SearchPatients) ([]responses.Patient, error)
	Update(ctx context.Context, patientID string, request *requests.Patient) (*responses.Patient, error)
	Disable(ctx context.Context, patientID string) (*responses.DisablePatient, error)
}

// PatientRepository lookups return (nil, nil) when no document has the given id.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByFilter(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	UpdateByID(ctx context.Context, patientID string, changes models.PatientChanges) (*models.Patient, error)
}
