package v1alpha1

import (
	"encoding/json"
	"time"
)

// FormData is the payload of one inspection wizard run. The JSON names are
// the wire names written by the mobile client; stored collections produced
// by older releases must unmarshal without translation.
type FormData struct {
	ID                           string `json:"id,omitempty"`
	Email                        string `json:"email"`
	OrderNumber                  string `json:"numeroOrden"`
	FSOType                      string `json:"tipoFSO"`
	InspectionCompany            string `json:"companiaInspeccion"`
	TechnicianName               string `json:"nombreTecnico"`
	CorrectAddressInstall        bool   `json:"instalacionDireccionCorrecta"`
	FTBSag                       bool   `json:"combaFTB"`
	CorrectGripPlacement         bool   `json:"colocacionGripCorrecta"`
	CorrectDropHeight            bool   `json:"alturaDropCorrecta"`
	AdequateSupportPoint         bool   `json:"puntoApoyoAdecuado"`
	DropFreeOfSplices            bool   `json:"dropLibreEmpalme"`
	DropMeters                   string `json:"metrosDrop"`
	CorrectHookPlacement         bool   `json:"colocacionGanchosCorrecta"`
	AdequateOutdoorDropRun       bool   `json:"recorridoDropExteriorAdecuado"`
	CorrectTestTerminalPlacement bool   `json:"colocacionTestTerminalCorrecta"`
	CorrectSurfaceJack           bool   `json:"jackSuperficieCorrecto"`
	RouterPlacedCorrectly        bool   `json:"routerUbicadoCorrectamente"`
	PowerReading                 string `json:"potenciaCorrecta"`
	ClientScore                  string `json:"puntuacionCliente"`
	ClientPhone                  int64  `json:"telefonoCliente"`
	ClientName                   string `json:"nombreCliente"`
	CaseComments                 string `json:"comentariosCaso"`
}

func (f FormData) String() string {
	val, _ := json.Marshal(f)
	return string(val)
}

// FormErrors maps wire field names to human-readable messages. A missing
// key means the field is valid; an empty map means the record is valid.
type FormErrors map[string]string

type FormStatus string

const (
	FormStatusCompleted FormStatus = "completed"
	FormStatusPending   FormStatus = "pending"
	FormStatusDraft     FormStatus = "draft"
)

// StoredForm wraps one persisted wizard submission. The denormalized
// summary fields exist for list rendering only; FormData stays the source
// of truth. Invariant: FormData.ID always equals ID.
type StoredForm struct {
	ID                string     `json:"id"`
	FormData          FormData   `json:"formData"`
	OrderNumber       string     `json:"orderNumber"`
	ClientName        string     `json:"clientName"`
	TechnicianName    string     `json:"technicianName"`
	CompanyInspection string     `json:"companyInspection"`
	FormType          string     `json:"formType"`
	Status            FormStatus `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	ClientRating      *int       `json:"clientRating,omitempty"`
	Comments          string     `json:"comments,omitempty"`
}

func (s StoredForm) String() string {
	val, _ := json.Marshal(s)
	return string(val)
}

// PDFFile is the ephemeral handle for one picked document. It is never
// persisted; it lives only for the duration of a single upload attempt.
type PDFFile struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

type FSOStatus string

const (
	FSOStatusPending    FSOStatus = "pending"
	FSOStatusProcessing FSOStatus = "processing"
	FSOStatusCompleted  FSOStatus = "completed"
	FSOStatusFailed     FSOStatus = "failed"
)

// FSOData describes a processed field service order derived from an
// uploaded document.
type FSOData struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"clientName"`
	OrderNumber string     `json:"orderNumber"`
	Address     string     `json:"address"`
	ServiceType string     `json:"serviceType"`
	Status      FSOStatus  `json:"status"`
	UploadedAt  time.Time  `json:"uploadedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	FileName    string     `json:"fileName"`
	FileSize    int64      `json:"fileSize"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FSODetailData is an FSOData enriched with the contact and scheduling
// fields a backend lookup would return. Enrichment is derived as a pure
// function of the ID.
type FSODetailData struct {
	FSOData
	ClientPhone  string       `json:"clientPhone,omitempty"`
	ClientEmail  string       `json:"clientEmail,omitempty"`
	Technician   string       `json:"technician,omitempty"`
	ScheduleDate string       `json:"scheduleDate,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Attachments  []string     `json:"attachments,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// SubmitReceipt is the payload returned by the submit endpoint on success.
type SubmitReceipt struct {
	ID string `json:"id"`
}

// SubmitResult is the outcome of one submit attempt, success or not.
type SubmitResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *SubmitReceipt `json:"data,omitempty"`
}

// ProcessedFSOResponse is the outcome of one upload attempt.
type ProcessedFSOResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *FSOData `json:"data,omitempty"`
}

// FileUploadResult is the outcome of one document pick.
type FileUploadResult struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Error    string `json:"error,omitempty"`
}
