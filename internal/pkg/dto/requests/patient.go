package requests

// Patient is the body of both the create and the update request. Nil fields were absent
// from the JSON body: create rejects them, update leaves the stored value untouched.
type Patient struct {
	Rut          *string `json:"rut" validate:"required,min=1"`
	Nombre       *string `json:"nombre" validate:"required,min=1"`
	Edad         *int    `json:"edad" validate:"required,gte=0"`
	Sexo         *string `json:"sexo" validate:"required,min=1"`
	Enfermedad   *string `json:"enfermedad" validate:"required,min=1"`
	FotoPersonal *string `json:"fotoPersonal"`
	FechaIngreso *string `json:"fechaIngreso" validate:"omitnil,fecha"`
	Revisado     *bool   `json:"revisado"`
}

// PresentFields returns the Go names of the fields carried by the request, in the form
// expected by validator's StructPartial.
func (p *Patient) PresentFields() []string {
	var fields []string
	if p.Rut != nil {
		fields = append(fields, "Rut")
	}
	if p.Nombre != nil {
		fields = append(fields, "Nombre")
	}
	if p.Edad != nil {
		fields = append(fields, "Edad")
	}
	if p.Sexo != nil {
		fields = append(fields, "Sexo")
	}
	if p.Enfermedad != nil {
		fields = append(fields, "Enfermedad")
	}
	if p.FotoPersonal != nil {
		fields = append(fields, "FotoPersonal")
	}
	if p.FechaIngreso != nil {
		fields = append(fields, "FechaIngreso")
	}
	if p.Revisado != nil {
		fields = append(fields, "Revisado")
	}
	return fields
}

// SearchPatients holds the raw query parameters of the search endpoint.
type SearchPatients struct {
	Sexo         string
	FechaIngreso string
	Enfermedad   string
}

// UploadFile describes one file received by the upload endpoint.
type UploadFile struct {
	OriginalName string
	ContentType  string
	Size         int64
}
