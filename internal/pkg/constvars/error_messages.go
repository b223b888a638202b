package constvars

// Client-facing messages for the required fields of a patient, keyed by JSON field name.
var PatientFieldValidationMessages = map[string]string{
	"rut":        "El RUT es obligatorio",
	"nombre":     "El nombre es obligatorio",
	"edad":       "La edad debe ser un número entero positivo",
	"sexo":       "El sexo es obligatorio",
	"enfermedad": "La enfermedad es obligatoria",
}

// Validation messages mapper, used for fields without a dedicated message
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"fecha":    "must be a date formatted as YYYY-MM-DD or RFC3339",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Error en el servidor"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientValidationFailed              = "La validación de los datos ha fallado"
	ErrClientPatientNotFound               = "Paciente no encontrado"
	ErrClientFileNotFound                  = "Archivo no encontrado"
	ErrClientNoFileUploaded                = "No se ha cargado ningún archivo"
	ErrClientTooManyFilesUploaded          = "Solo se permite cargar un archivo"
	ErrClientFileTypeNotAllowed            = "Tipo de archivo no permitido"
	ErrClientInvalidDate                   = "La fecha de ingreso no es válida"
	ErrClientFileTooLarge                  = "El archivo es demasiado grande"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON request body"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotParseDate            = "cannot parse date %q"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevPanicRecovered             = "panic recovered while serving the request"
	ErrDevRequestBodyTooLarge        = "request body exceeds %d bytes"
	ErrDevTooManyRequests            = "rate limit exceeded for %s"
	ErrDevPatientNotFound            = "patient %s not found"
	ErrDevFileNotFound               = "file %s not found"
	ErrDevInvalidStoredFileName      = "stored file name %q does not match the safe pattern"
	ErrDevNoFileUploaded             = "multipart field %q carries no file"
	ErrDevTooManyFilesUploaded       = "multipart field %q carries %d files"
	ErrDevFileTypeNotAllowed         = "declared content type %q is not allowed"
	ErrDevCannotOpenUploadedFile     = "cannot open uploaded file"
	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate over documents in database"
	ErrDevRedisGetData               = "failed to get data from redis with key %s"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data in redis"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevStorageFailedToWriteFile   = "failed to write file %s"
	ErrDevStorageFailedToReadFile    = "failed to read file %s"
	ErrDevStorageFailedToCreateDir   = "failed to create upload directory %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToGetObject     = "failed to get object from bucket %s"
	ErrDevMinioFailedToCreateBucket  = "failed to create bucket %s"
)
