package validation

import (
	"fmt"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

// FieldKind classifies a form field for validation and step checks.
type FieldKind int

const (
	KindText FieldKind = iota
	KindEmail
	KindPhone
	KindNumericText
	KindBool
)

// Field describes one form field by its wire name. The registry drives
// per-field validation, step validity checks and the interactive wizard.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
}

// Fields lists every form field in the order the wizard presents them.
var Fields = []Field{
	{Name: "numeroOrden", Label: "Número de orden", Kind: KindText},
	{Name: "tipoFSO", Label: "Tipo de FSO", Kind: KindText},
	{Name: "companiaInspeccion", Label: "Compañía de inspección", Kind: KindText},
	{Name: "nombreTecnico", Label: "Nombre del técnico", Kind: KindText},
	{Name: "instalacionDireccionCorrecta", Label: "Instalación en dirección correcta", Kind: KindBool},
	{Name: "combaFTB", Label: "Comba FTB", Kind: KindBool},
	{Name: "colocacionGripCorrecta", Label: "Colocación de grip correcta", Kind: KindBool},
	{Name: "alturaDropCorrecta", Label: "Altura del drop correcta", Kind: KindBool},
	{Name: "puntoApoyoAdecuado", Label: "Punto de apoyo adecuado", Kind: KindBool},
	{Name: "dropLibreEmpalme", Label: "Drop libre de empalme", Kind: KindBool},
	{Name: "metrosDrop", Label: "Metros de drop", Kind: KindNumericText},
	{Name: "colocacionGanchosCorrecta", Label: "Colocación de ganchos correcta", Kind: KindBool},
	{Name: "recorridoDropExteriorAdecuado", Label: "Recorrido del drop exterior adecuado", Kind: KindBool},
	{Name: "colocacionTestTerminalCorrecta", Label: "Colocación de test terminal correcta", Kind: KindBool},
	{Name: "jackSuperficieCorrecto", Label: "Jack de superficie correcto", Kind: KindBool},
	{Name: "routerUbicadoCorrectamente", Label: "Router ubicado correctamente", Kind: KindBool},
	{Name: "potenciaCorrecta", Label: "Potencia", Kind: KindText},
	{Name: "puntuacionCliente", Label: "Puntuación del cliente", Kind: KindNumericText},
	{Name: "nombreCliente", Label: "Nombre del cliente", Kind: KindText},
	{Name: "telefonoCliente", Label: "Teléfono del cliente", Kind: KindPhone},
	{Name: "email", Label: "Correo electrónico", Kind: KindEmail},
	{Name: "comentariosCaso", Label: "Comentarios del caso", Kind: KindText},
}

func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func stringField(d *api.FormData, name string) *string {
	switch name {
	case "email":
		return &d.Email
	case "numeroOrden":
		return &d.OrderNumber
	case "tipoFSO":
		return &d.FSOType
	case "companiaInspeccion":
		return &d.InspectionCompany
	case "nombreTecnico":
		return &d.TechnicianName
	case "metrosDrop":
		return &d.DropMeters
	case "potenciaCorrecta":
		return &d.PowerReading
	case "puntuacionCliente":
		return &d.ClientScore
	case "nombreCliente":
		return &d.ClientName
	case "comentariosCaso":
		return &d.CaseComments
	}
	return nil
}

func boolField(d *api.FormData, name string) *bool {
	switch name {
	case "instalacionDireccionCorrecta":
		return &d.CorrectAddressInstall
	case "combaFTB":
		return &d.FTBSag
	case "colocacionGripCorrecta":
		return &d.CorrectGripPlacement
	case "alturaDropCorrecta":
		return &d.CorrectDropHeight
	case "puntoApoyoAdecuado":
		return &d.AdequateSupportPoint
	case "dropLibreEmpalme":
		return &d.DropFreeOfSplices
	case "colocacionGanchosCorrecta":
		return &d.CorrectHookPlacement
	case "recorridoDropExteriorAdecuado":
		return &d.AdequateOutdoorDropRun
	case "colocacionTestTerminalCorrecta":
		return &d.CorrectTestTerminalPlacement
	case "jackSuperficieCorrecto":
		return &d.CorrectSurfaceJack
	case "routerUbicadoCorrectamente":
		return &d.RouterPlacedCorrectly
	}
	return nil
}

// Get returns the current value of a field by wire name.
func Get(d *api.FormData, name string) (any, bool) {
	if p := stringField(d, name); p != nil {
		return *p, true
	}
	if p := boolField(d, name); p != nil {
		return *p, true
	}
	if name == "telefonoCliente" {
		return d.ClientPhone, true
	}
	return nil, false
}

// Set assigns a field by wire name, enforcing the field's type. Phone
// accepts any integer width plus float64 so JSON-decoded patches work.
func Set(d *api.FormData, name string, value any) error {
	if p := stringField(d, name); p != nil {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q expects a string, got %T", name, value)
		}
		*p = s
		return nil
	}
	if p := boolField(d, name); p != nil {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %q expects a bool, got %T", name, value)
		}
		*p = b
		return nil
	}
	if name == "telefonoCliente" {
		switch v := value.(type) {
		case int64:
			d.ClientPhone = v
		case int:
			d.ClientPhone = int64(v)
		case float64:
			d.ClientPhone = int64(v)
		default:
			return fmt.Errorf("field %q expects a number, got %T", name, value)
		}
		return nil
	}
	return fmt.Errorf("unknown field %q", name)
}
