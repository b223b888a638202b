package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPatientFilter_ConvertToBsonM(t *testing.T) {
	desde := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Empty Filter Matches Everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, PatientFilter{}.ConvertToBsonM())
	})

	t.Run("Exact Match Criteria", func(t *testing.T) {
		filter := PatientFilter{Sexo: "F", Enfermedad: "gripe"}
		assert.Equal(t, bson.M{"sexo": "F", "enfermedad": "gripe"}, filter.ConvertToBsonM())
	})

	t.Run("Fecha Ingreso Is An Inclusive Lower Bound", func(t *testing.T) {
		filter := PatientFilter{FechaIngresoDesde: &desde}
		assert.Equal(t, bson.M{"fechaIngreso": bson.M{"$gte": desde}}, filter.ConvertToBsonM())
	})

	t.Run("All Criteria Intersect", func(t *testing.T) {
		filter := PatientFilter{Sexo: "M", Enfermedad: "asma", FechaIngresoDesde: &desde}
		assert.Equal(t, bson.M{
			"sexo":         "M",
			"enfermedad":   "asma",
			"fechaIngreso": bson.M{"$gte": desde},
		}, filter.ConvertToBsonM())
	})
}

func TestPatientChanges_ConvertToBsonM(t *testing.T) {
	nombre := "X"
	revisado := false

	t.Run("Only Supplied Fields Are Set", func(t *testing.T) {
		changes := PatientChanges{Nombre: &nombre}
		assert.Equal(t, bson.M{"nombre": "X"}, changes.ConvertToBsonM())
	})

	t.Run("False Boolean Is Still Supplied", func(t *testing.T) {
		changes := PatientChanges{Revisado: &revisado}
		assert.Equal(t, bson.M{"revisado": false}, changes.ConvertToBsonM())
	})

	t.Run("No Fields", func(t *testing.T) {
		assert.Empty(t, PatientChanges{}.ConvertToBsonM())
	})
}
