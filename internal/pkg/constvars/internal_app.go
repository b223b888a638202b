package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourcePatients = "pacientes"
	ResourceUploads  = "upload"
	ResourceSearch   = "buscar"
)

const (
	MongoCollectionPatients = "pacientes"
)

const (
	RedisKeyPatientFormat = "patient:%s"
)

const (
	UploadFormFieldName = "file"
)

// AllowedUploadMIMETypes lists the declared content types accepted by the upload endpoint.
var AllowedUploadMIMETypes = map[string]bool{
	MIMEImageJPEG: true,
	MIMEImagePNG:  true,
	MIMEImageGIF:  true,
}

const (
	RegexUploadOriginalNameUnsafeChars = `[^A-Za-z0-9._-]`
	RegexStoredFileName                = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-[A-Za-z0-9._-]+$`
)

// Accepted layouts for fechaIngreso, tried in order.
var FechaIngresoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	FechaIngresoDateOnlyLayout,
}

// FechaIngresoDateOnlyLayout values are midnight UTC.
const FechaIngresoDateOnlyLayout = "2006-01-02"

const (
	URLParamPatientID = "id"
	URLParamFileName  = "filename"

	QueryParamSexo         = "sexo"
	QueryParamFechaIngreso = "fechaIngreso"
	QueryParamEnfermedad   = "enfermedad"
)
