package patients

import (
	"context"
	"fmt"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/models"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"pacientes-service/internal/pkg/dto/responses"
	"pacientes-service/internal/pkg/exceptions"
	"pacientes-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	CacheTTL          time.Duration
	Log               *zap.Logger
	now               func() time.Time
}

// NewPatientUsecase builds the patient service. redisRepository may be nil, in which case
// every lookup goes to the repository.
func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		CacheTTL:          cacheTTL,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.Patient) (*responses.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizePatientRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Warn("patientUsecase.Create validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingValidationKey, exceptions.FormatAllValidationErrors(err)),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		Rut:          *request.Rut,
		Nombre:       *request.Nombre,
		Edad:         *request.Edad,
		Sexo:         *request.Sexo,
		Enfermedad:   *request.Enfermedad,
		FechaIngreso: uc.now(),
	}
	if request.FotoPersonal != nil {
		patient.FotoPersonal = *request.FotoPersonal
	}
	if request.Revisado != nil {
		patient.Revisado = *request.Revisado
	}
	if request.FechaIngreso != nil {
		fechaIngreso, err := utils.ParseFechaIngreso(*request.FechaIngreso)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, *request.FechaIngreso)
		}
		patient.FechaIngreso = fechaIngreso
	}

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return convertPatientsIntoResponse(patients), nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if cached := uc.getCachedPatient(ctx, patientID); cached != nil {
		response := cached.ConvertIntoResponse()
		return &response, nil
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	uc.cachePatientIfAbsent(ctx, patient)
	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) Search(ctx context.Context, request *requests.SearchPatients) ([]responses.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	utils.SanitizeSearchPatientsRequest(request)
	uc.Log.Info("patientUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFilterKey, request),
	)

	filter := models.PatientFilter{
		Sexo:       request.Sexo,
		Enfermedad: request.Enfermedad,
	}
	if request.FechaIngreso != "" {
		fechaIngreso, err := utils.ParseFechaIngreso(request.FechaIngreso)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, request.FechaIngreso)
		}
		filter.FechaIngresoDesde = &fechaIngreso
	}

	patients, err := uc.PatientRepository.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return convertPatientsIntoResponse(patients), nil
}

// Update writes only the fields carried by request. Fields absent from the body keep
// their stored value.
func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.Patient) (*responses.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	utils.SanitizePatientRequest(request)
	err := utils.ValidateStructPartial(request, request.PresentFields()...)
	if err != nil {
		uc.Log.Warn("patientUsecase.Update validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingValidationKey, exceptions.FormatAllValidationErrors(err)),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	changes := models.PatientChanges{
		Rut:          request.Rut,
		Nombre:       request.Nombre,
		Edad:         request.Edad,
		Sexo:         request.Sexo,
		FotoPersonal: request.FotoPersonal,
		Enfermedad:   request.Enfermedad,
		Revisado:     request.Revisado,
	}
	if request.FechaIngreso != nil {
		fechaIngreso, err := utils.ParseFechaIngreso(*request.FechaIngreso)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err, *request.FechaIngreso)
		}
		changes.FechaIngreso = &fechaIngreso
	}

	patient, err := uc.PatientRepository.UpdateByID(ctx, patientID, changes)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	uc.refreshCachedPatient(ctx, patient)

	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	response := patient.ConvertIntoResponse()
	return &response, nil
}

// Disable marks the patient as not reviewed. The document itself is kept.
func (uc *patientUsecase) Disable(ctx context.Context, patientID string) (*responses.DisablePatient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.Disable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	revisado := false
	patient, err := uc.PatientRepository.UpdateByID(ctx, patientID, models.PatientChanges{Revisado: &revisado})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	uc.refreshCachedPatient(ctx, patient)

	uc.Log.Info("patientUsecase.Disable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	response := patient.ConvertIntoResponse()
	return &responses.DisablePatient{
		Message: constvars.PatientDisabledSuccessMessage,
		Patient: &response,
	}, nil
}

func (uc *patientUsecase) getCachedPatient(ctx context.Context, patientID string) *models.Patient {
	if uc.RedisRepository == nil {
		return nil
	}
	key := fmt.Sprintf(constvars.RedisKeyPatientFormat, patientID)
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("patientUsecase cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return nil
	}
	if data == "" {
		return nil
	}

	var patient models.Patient
	err = json.Unmarshal([]byte(data), &patient)
	if err != nil {
		uc.Log.Warn("patientUsecase cache entry is not a patient",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return nil
	}
	return &patient
}

// cachePatientIfAbsent fills a cache miss. It never overwrites an entry, so a read that
// raced with a write cannot replace the record the write stored.
func (uc *patientUsecase) cachePatientIfAbsent(ctx context.Context, patient *models.Patient) {
	if uc.RedisRepository == nil {
		return
	}
	key := fmt.Sprintf(constvars.RedisKeyPatientFormat, patient.ID)
	_, err := uc.RedisRepository.SetNX(ctx, key, patient, uc.CacheTTL)
	if err != nil {
		uc.Log.Warn("patientUsecase cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

// refreshCachedPatient stores the record a write returned. When that fails the entry is
// dropped instead.
func (uc *patientUsecase) refreshCachedPatient(ctx context.Context, patient *models.Patient) {
	if uc.RedisRepository == nil {
		return
	}
	key := fmt.Sprintf(constvars.RedisKeyPatientFormat, patient.ID)
	err := uc.RedisRepository.Set(ctx, key, patient, uc.CacheTTL)
	if err == nil {
		return
	}
	uc.Log.Warn("patientUsecase cache refresh failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Error(err),
	)

	err = uc.RedisRepository.Delete(ctx, key)
	if err != nil {
		uc.Log.Warn("patientUsecase cache eviction failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

func convertPatientsIntoResponse(patients []models.Patient) []responses.Patient {
	response := make([]responses.Patient, len(patients))
	for i, eachPatient := range patients {
		response[i] = eachPatient.ConvertIntoResponse()
	}
	return response
}
