package constvars

const (
	ResponseUnknown = "unknown"

	PatientDisabledSuccessMessage = "Paciente inhabilitado"
)
