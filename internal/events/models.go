package events

import api "github.com/fieldops/fieldforms/api/v1alpha1"

type FormSubmittedEvent struct {
	FormID      string `json:"form_id"`
	OrderNumber string `json:"order_number"`
	Technician  string `json:"technician"`
}

type FSOStatusChangedEvent struct {
	FSOID  string        `json:"fso_id"`
	Status api.FSOStatus `json:"status"`
}

type FSOUploadedEvent struct {
	FSOID    string `json:"fso_id"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
}
