package store

import (
	"time"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

// SeedFSOData returns the demo feed written the first time the FSO list is
// read on a fresh install.
func SeedFSOData() []api.FSOData {
	processed := time.Date(2025, time.August, 15, 11, 0, 0, 0, time.UTC)
	return []api.FSOData{
		{
			ID:          "fso_001",
			ClientName:  "María González",
			OrderNumber: "ORD-78901",
			Address:     "Calle Revolución 456, Col. Centro",
			ServiceType: "Mantenimiento de Red",
			Status:      api.FSOStatusCompleted,
			UploadedAt:  time.Date(2025, time.August, 15, 10, 30, 0, 0, time.UTC),
			ProcessedAt: &processed,
			FileName:    "FSO_78901.pdf",
			FileSize:    2456789,
		},
		{
			ID:          "fso_002",
			ClientName:  "Carlos Rodríguez",
			OrderNumber: "ORD-78902",
			Address:     "Av. Libertad 789, Col. Nueva",
			ServiceType: "Instalación Nueva",
			Status:      api.FSOStatusProcessing,
			UploadedAt:  time.Date(2025, time.August, 16, 14, 15, 0, 0, time.UTC),
			FileName:    "FSO_78902.pdf",
			FileSize:    1876543,
		},
		{
			ID:          "fso_003",
			ClientName:  "Ana Martínez",
			OrderNumber: "ORD-78903",
			Address:     "Plaza Mayor 321, Col. Histórica",
			ServiceType: "Reparación de Fibra",
			Status:      api.FSOStatusPending,
			UploadedAt:  time.Date(2025, time.August, 17, 9, 45, 0, 0, time.UTC),
			FileName:    "FSO_78903.pdf",
			FileSize:    3234567,
		},
	}
}
