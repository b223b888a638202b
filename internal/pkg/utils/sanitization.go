package utils

import (
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/dto/requests"
	"path"
	"regexp"
	"strings"
)

const (
	defaultUploadFileName   = "file"
	maxUploadFileNameLength = 128
)

var (
	uploadNameUnsafeChars = regexp.MustCompile(constvars.RegexUploadOriginalNameUnsafeChars)
	storedFileNamePattern = regexp.MustCompile(constvars.RegexStoredFileName)
)

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizePatientRequest(input *requests.Patient) {
	trimStringPointer(input.Rut)
	trimStringPointer(input.Nombre)
	trimStringPointer(input.Sexo)
	trimStringPointer(input.Enfermedad)
	trimStringPointer(input.FotoPersonal)
	trimStringPointer(input.FechaIngreso)
}

// SanitizeSearchPatientsRequest only trims the date. Sexo and enfermedad are matched
// exactly as sent.
func SanitizeSearchPatientsRequest(input *requests.SearchPatients) {
	input.FechaIngreso = strings.TrimSpace(input.FechaIngreso)
}

// SanitizeUploadFileName keeps the last path element of a client supplied file name and
// replaces every character outside [A-Za-z0-9._-] with an underscore.
func SanitizeUploadFileName(originalName string) string {
	baseName := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	baseName = uploadNameUnsafeChars.ReplaceAllString(baseName, "_")
	if len(baseName) > maxUploadFileNameLength {
		baseName = baseName[len(baseName)-maxUploadFileNameLength:]
	}
	if baseName == "" || baseName == "." || baseName == ".." || baseName == "/" {
		return defaultUploadFileName
	}
	return baseName
}

// IsSafeStoredFileName reports whether name has the shape of a generated upload name.
// Anything else is never resolved against the storage backend.
func IsSafeStoredFileName(name string) bool {
	return storedFileNamePattern.MatchString(name)
}
