package validation

import (
	"strconv"
	"strings"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

// ValidateFormForSubmission applies the flexible policy: only the fields
// needed to persist a meaningful record are mandatory. Email and phone are
// format-checked only when present.
func ValidateFormForSubmission(data api.FormData) api.FormErrors {
	errs := api.FormErrors{}

	if strings.TrimSpace(data.OrderNumber) == "" {
		errs["numeroOrden"] = "El número de orden es obligatorio"
	}
	if strings.TrimSpace(data.TechnicianName) == "" {
		errs["nombreTecnico"] = "El nombre del técnico es obligatorio"
	}
	if strings.TrimSpace(data.ClientName) == "" {
		errs["nombreCliente"] = "El nombre del cliente es obligatorio"
	}

	if strings.TrimSpace(data.Email) != "" && !emailRegex.MatchString(data.Email) {
		errs["email"] = "Formato de correo inválido"
	}

	if data.ClientPhone != 0 && !phoneRegex.MatchString(strconv.FormatInt(data.ClientPhone, 10)) {
		errs["telefonoCliente"] = "Formato de teléfono inválido"
	}

	return errs
}

// CanSubmitForm reports whether the flexible policy produces no errors.
func CanSubmitForm(data api.FormData) bool {
	return len(ValidateFormForSubmission(data)) == 0
}
