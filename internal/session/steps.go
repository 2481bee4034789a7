package session

// Step is one page of the multi-step wizard: a named, ordered subset of
// form fields. Step numbers are 1-based.
type Step struct {
	Name   string
	Fields []string
}

// Steps is the fixed wizard layout. Field order within a step follows the
// order the mobile client rendered them.
var Steps = []Step{
	{
		Name:   "Datos de la orden",
		Fields: []string{"numeroOrden", "tipoFSO", "companiaInspeccion", "nombreTecnico"},
	},
	{
		Name: "Instalación",
		Fields: []string{
			"instalacionDireccionCorrecta", "combaFTB", "colocacionGripCorrecta",
			"alturaDropCorrecta", "puntoApoyoAdecuado", "dropLibreEmpalme",
		},
	},
	{
		Name: "Drop y conexiones",
		Fields: []string{
			"metrosDrop", "colocacionGanchosCorrecta", "recorridoDropExteriorAdecuado",
			"colocacionTestTerminalCorrecta", "jackSuperficieCorrecto", "routerUbicadoCorrectamente",
		},
	},
	{
		Name:   "Medición",
		Fields: []string{"potenciaCorrecta", "puntuacionCliente"},
	},
	{
		Name:   "Cliente",
		Fields: []string{"nombreCliente", "telefonoCliente", "email", "comentariosCaso"},
	},
}

func StepCount() int {
	return len(Steps)
}
