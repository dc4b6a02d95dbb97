package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pixil98/dogtown/internal/scene"
	"github.com/pixil98/dogtown/internal/view"
)

const (
	rad2deg        = 180 / math.Pi
	cylinderSlices = 12
	fontSize       = 18
	panelPadding   = 12
)

func drawModel(m scene.Model) {
	rl.PushMatrix()
	defer rl.PopMatrix()

	rl.Translatef(m.Position.X, m.Position.Y, m.Position.Z)
	if m.Yaw != 0 {
		rl.Rotatef(m.Yaw*rad2deg, 0, 1, 0)
	}
	if s := m.ScaleOr(); s != 1 {
		rl.Scalef(s, s, s)
	}

	for _, p := range m.Parts {
		drawPart(p)
	}
	for _, c := range m.Children {
		drawModel(c)
	}
}

func drawPart(p scene.Part) {
	rl.PushMatrix()
	defer rl.PopMatrix()

	rl.Translatef(p.Offset.X, p.Offset.Y, p.Offset.Z)
	if p.Rotation.X != 0 {
		rl.Rotatef(p.Rotation.X*rad2deg, 1, 0, 0)
	}
	if p.Rotation.Y != 0 {
		rl.Rotatef(p.Rotation.Y*rad2deg, 0, 1, 0)
	}
	if p.Rotation.Z != 0 {
		rl.Rotatef(p.Rotation.Z*rad2deg, 0, 0, 1)
	}

	c := rl.NewColor(p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	s := p.Shape
	origin := rl.NewVector3(0, 0, 0)

	switch s.Kind {
	case scene.KindBox:
		rl.DrawCube(origin, s.Size.X, s.Size.Y, s.Size.Z, c)
	case scene.KindSphere:
		rl.DrawSphere(origin, s.Radius, c)
	case scene.KindCylinder:
		// raylib draws cylinders up from their base
		rl.DrawCylinder(rl.NewVector3(0, -s.Height/2, 0), s.Radius, s.Bottom, s.Height, cylinderSlices, c)
	case scene.KindPlane:
		rl.DrawPlane(origin, rl.NewVector2(s.Size.X, s.Size.Z), c)
	case scene.KindDisc:
		rl.DrawCircle3D(origin, s.Radius, rl.NewVector3(0, 1, 0), 0, c)
	}
}

func drawControls() {
	lines := append([]string{view.ControlsTitle}, view.Controls...)

	width := int32(0)
	for _, l := range lines {
		width = max(width, rl.MeasureText(l, fontSize))
	}
	height := int32(len(lines))*(fontSize+4) + panelPadding

	rl.DrawRectangle(16, 16, width+2*panelPadding, height, rl.Fade(rl.RayWhite, 0.9))
	for i, l := range lines {
		col := rl.DarkGray
		if i == 0 {
			col = rl.Black
		}
		rl.DrawText(l, 16+panelPadding, 16+panelPadding/2+int32(i)*(fontSize+4), fontSize, col)
	}
}

func drawToasts(toasts []view.Toast) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	y := screenH - 16
	for i := len(toasts) - 1; i >= 0; i-- {
		t := toasts[i]

		lines := []string{t.Message}
		if t.Description != "" {
			lines = append(lines, t.Description)
		}

		width := int32(0)
		for _, l := range lines {
			width = max(width, rl.MeasureText(l, fontSize))
		}
		width += 2 * panelPadding
		height := int32(len(lines))*(fontSize+4) + panelPadding
		y -= height

		bg := rl.Fade(rl.Black, 0.8)
		if t.Success {
			bg = rl.Fade(rl.DarkGreen, 0.85)
		}
		x := screenW - width - 16
		rl.DrawRectangle(x, y, width, height, bg)
		for j, l := range lines {
			rl.DrawText(l, x+panelPadding, y+panelPadding/2+int32(j)*(fontSize+4), fontSize, rl.RayWhite)
		}
		y -= 8
	}
}
