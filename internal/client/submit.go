// Package client implements the form submission backends: a real HTTP
// client and a deterministic mock for offline development. Expected
// failures (network, timeout, server rejection) are reported as a failed
// SubmitResult, not as an error; callers only see an error for conditions
// that should never happen.
package client

import (
	"context"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

type Submitter interface {
	Submit(ctx context.Context, data api.FormData) (*api.SubmitResult, error)
}

const (
	msgSuccess = "Formulario enviado exitosamente"
	msgTimeout = "Tiempo de espera agotado. Verifica tu conexión e intenta nuevamente."
	msgNetwork = "Error de red. Verifica tu conexión a internet."
	msgServer  = "Error del servidor. Intenta nuevamente más tarde."
)
