package responses

import "time"

type Patient struct {
	ID           string    `json:"_id"`
	Rut          string    `json:"rut"`
	Nombre       string    `json:"nombre"`
	Edad         int       `json:"edad"`
	Sexo         string    `json:"sexo"`
	FotoPersonal string    `json:"fotoPersonal"`
	FechaIngreso time.Time `json:"fechaIngreso"`
	Enfermedad   string    `json:"enfermedad"`
	Revisado     bool      `json:"revisado"`
}

type DisablePatient struct {
	Message string   `json:"message"`
	Patient *Patient `json:"paciente"`
}

type UploadFile struct {
	FileName string `json:"fileName"`
}
