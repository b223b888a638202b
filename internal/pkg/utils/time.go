package utils

import (
	"fmt"
	"pacientes-service/internal/pkg/constvars"
	"time"
)

// ParseFechaIngreso accepts RFC3339 timestamps as well as bare dates. A bare date is
// midnight UTC, a date-time without a zone is read in time.Local.
func ParseFechaIngreso(value string) (time.Time, error) {
	for _, layout := range constvars.FechaIngresoLayouts {
		location := time.Local
		if layout == constvars.FechaIngresoDateOnlyLayout {
			location = time.UTC
		}
		parsed, err := time.ParseInLocation(layout, value, location)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", value)
}
