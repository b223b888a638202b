package models

import (
	"pacientes-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type Patient struct {
	ID           string    `json:"_id" bson:"_id,omitempty"`
	Rut          string    `json:"rut" bson:"rut"`
	Nombre       string    `json:"nombre" bson:"nombre"`
	Edad         int       `json:"edad" bson:"edad"`
	Sexo         string    `json:"sexo" bson:"sexo"`
	FotoPersonal string    `json:"fotoPersonal" bson:"fotoPersonal"`
	FechaIngreso time.Time `json:"fechaIngreso" bson:"fechaIngreso"`
	Enfermedad   string    `json:"enfermedad" bson:"enfermedad"`
	Revisado     bool      `json:"revisado" bson:"revisado"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:           p.ID,
		Rut:          p.Rut,
		Nombre:       p.Nombre,
		Edad:         p.Edad,
		Sexo:         p.Sexo,
		FotoPersonal: p.FotoPersonal,
		FechaIngreso: p.FechaIngreso,
		Enfermedad:   p.Enfermedad,
		Revisado:     p.Revisado,
	}
}

// PatientChanges carries the fields of an update. Nil fields are not written.
type PatientChanges struct {
	Rut          *string
	Nombre       *string
	Edad         *int
	Sexo         *string
	FotoPersonal *string
	FechaIngreso *time.Time
	Enfermedad   *string
	Revisado     *bool
}

func (c PatientChanges) ConvertToBsonM() bson.M {
	fields := bson.M{}
	if c.Rut != nil {
		fields["rut"] = *c.Rut
	}
	if c.Nombre != nil {
		fields["nombre"] = *c.Nombre
	}
	if c.Edad != nil {
		fields["edad"] = *c.Edad
	}
	if c.Sexo != nil {
		fields["sexo"] = *c.Sexo
	}
	if c.FotoPersonal != nil {
		fields["fotoPersonal"] = *c.FotoPersonal
	}
	if c.FechaIngreso != nil {
		fields["fechaIngreso"] = *c.FechaIngreso
	}
	if c.Enfermedad != nil {
		fields["enfermedad"] = *c.Enfermedad
	}
	if c.Revisado != nil {
		fields["revisado"] = *c.Revisado
	}
	return fields
}

// PatientFilter is a search over patients. Zero-valued criteria do not restrict the result.
type PatientFilter struct {
	Sexo              string
	Enfermedad        string
	FechaIngresoDesde *time.Time
}

func (f PatientFilter) ConvertToBsonM() bson.M {
	filter := bson.M{}
	if f.Sexo != "" {
		filter["sexo"] = f.Sexo
	}
	if f.FechaIngresoDesde != nil {
		filter["fechaIngreso"] = bson.M{"$gte": *f.FechaIngresoDesde}
	}
	if f.Enfermedad != "" {
		filter["enfermedad"] = f.Enfermedad
	}
	return filter
}
