// Package validation holds the two validation policies over FormData.
//
// The strict policy backs live field-level feedback in the wizard; the
// flexible policy gates actual persistence. They are deliberately separate
// (not layered): a record can be submittable while still showing inline
// errors. Do not unify them without product guidance.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Basic international format.
	phoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
)

// ValidateForm applies the strict policy: every field is required.
// Boolean checks are vacuously valid: the mobile client guarded against
// non-boolean values, which Go's type system rules out.
func ValidateForm(data api.FormData) api.FormErrors {
	errs := api.FormErrors{}

	if strings.TrimSpace(data.Email) == "" {
		errs["email"] = "El correo electrónico es obligatorio"
	} else if !emailRegex.MatchString(data.Email) {
		errs["email"] = "Formato de correo inválido"
	}

	if strings.TrimSpace(data.OrderNumber) == "" {
		errs["numeroOrden"] = "El número de orden es obligatorio"
	}
	if strings.TrimSpace(data.FSOType) == "" {
		errs["tipoFSO"] = "El tipo de FSO es obligatorio"
	}
	if strings.TrimSpace(data.InspectionCompany) == "" {
		errs["companiaInspeccion"] = "La compañía de inspección es obligatoria"
	}
	if strings.TrimSpace(data.TechnicianName) == "" {
		errs["nombreTecnico"] = "El nombre del técnico es obligatorio"
	}

	if strings.TrimSpace(data.DropMeters) == "" {
		errs["metrosDrop"] = "Los metros de drop son obligatorios"
	} else if !isNumeric(data.DropMeters) {
		errs["metrosDrop"] = "Debe ser un número"
	}

	if strings.TrimSpace(data.PowerReading) == "" {
		errs["potenciaCorrecta"] = "La potencia es obligatoria"
	}

	if strings.TrimSpace(data.ClientScore) == "" {
		errs["puntuacionCliente"] = "La puntuación del cliente es obligatoria"
	} else if !isNumeric(data.ClientScore) {
		errs["puntuacionCliente"] = "Debe ser un número"
	}

	if data.ClientPhone == 0 {
		errs["telefonoCliente"] = "El teléfono del cliente es obligatorio"
	} else if !phoneRegex.MatchString(strconv.FormatInt(data.ClientPhone, 10)) {
		errs["telefonoCliente"] = "Formato de teléfono inválido"
	}

	if strings.TrimSpace(data.ClientName) == "" {
		errs["nombreCliente"] = "El nombre del cliente es obligatorio"
	}
	if strings.TrimSpace(data.CaseComments) == "" {
		errs["comentariosCaso"] = "Los comentarios del caso son obligatorios"
	}

	return errs
}

// IsFormValid reports whether the strict policy produces no errors.
func IsFormValid(data api.FormData) bool {
	return len(ValidateForm(data)) == 0
}

// ValidateField validates a single field value in isolation under the
// strict policy, without touching the rest of the record. An empty string
// means the value is valid.
func ValidateField(name string, value any) string {
	var scratch api.FormData
	if err := Set(&scratch, name, value); err != nil {
		return ""
	}
	return ValidateForm(scratch)[name]
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
