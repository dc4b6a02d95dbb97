package view

// ControlsTitle and Controls are the help panel drawn over the scene.
const ControlsTitle = "Steuerung"

var Controls = []string{
	"Pfeiltasten: Bewegen",
	"V: Bellen",
	"Y: Essen",
	"Maus: Kamera drehen",
}
