package service

import (
	"hash/fnv"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

// Enrichment simulates the backend detail lookup. Every field is selected
// from a fixed table by a hash of the record ID, so repeated lookups for
// the same ID always agree without any stored state.

var enrichPhones = []string{
	"+52 555 123 4567",
	"+52 555 987 6543",
	"+52 555 246 8135",
	"+52 555 369 1215",
	"+52 555 482 7396",
}

var enrichEmails = []string{
	"cliente@email.com",
	"contacto@fibranet.mx",
	"soporte.cliente@correo.mx",
	"usuario@telecom.mx",
	"atencion@redes.mx",
}

var enrichTechnicians = []string{
	"Pedro González",
	"Luisa Fernández",
	"Jorge Ramírez",
	"Sofía Herrera",
	"Miguel Castillo",
}

var enrichScheduleDates = []string{
	"2025-08-20T09:00:00Z",
	"2025-08-21T11:30:00Z",
	"2025-08-22T15:00:00Z",
	"2025-08-25T08:30:00Z",
	"2025-08-26T13:45:00Z",
}

var enrichNotes = []string{
	"Cliente requiere instalación en segundo piso. Acceso por escalera externa.",
	"Portón cerrado en visitas previas. Llamar al llegar.",
	"Ducto saturado en la fachada. Considerar ruta alterna.",
	"El cliente solicita visita después de las 14:00.",
	"Perro en el patio. Pedir que lo aseguren antes de entrar.",
}

var enrichAttachments = [][]string{
	{"diagrama_instalacion.pdf", "fotos_sitio.jpg"},
	{"croquis_acceso.pdf"},
	{"orden_original.pdf", "contrato.pdf"},
	{"fotos_fachada.jpg"},
	{"medicion_previa.pdf", "fotos_caja.jpg"},
}

var enrichCoordinates = []api.Coordinates{
	{Latitude: 19.4326, Longitude: -99.1332},
	{Latitude: 20.6597, Longitude: -103.3496},
	{Latitude: 25.6866, Longitude: -100.3161},
	{Latitude: 21.1619, Longitude: -86.8515},
	{Latitude: 19.0414, Longitude: -98.2063},
}

func enrichHash(id string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return h.Sum32()
}

func pick[T any](table []T, hash, salt uint32) T {
	return table[(hash+salt)%uint32(len(table))]
}

// Enrich derives the detail-only fields from the record ID.
func Enrich(fso api.FSOData) api.FSODetailData {
	h := enrichHash(fso.ID)
	coords := pick(enrichCoordinates, h, 6)
	return api.FSODetailData{
		FSOData:      fso,
		ClientPhone:  pick(enrichPhones, h, 0),
		ClientEmail:  pick(enrichEmails, h, 1),
		Technician:   pick(enrichTechnicians, h, 2),
		ScheduleDate: pick(enrichScheduleDates, h, 3),
		Notes:        pick(enrichNotes, h, 4),
		Attachments:  pick(enrichAttachments, h, 5),
		Coordinates:  &coords,
	}
}
