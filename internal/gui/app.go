package gui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trigcalc/internal/calc"
	"github.com/san-kum/trigcalc/internal/config"
	"github.com/san-kum/trigcalc/internal/lut"
	"github.com/san-kum/trigcalc/internal/plot"
)

const (
	title    = "Trig Calculator"
	fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	margin   = 24

	// compactWave is the wave panel height while the listing is open.
	compactWave = 120
)

// Theme colors
var (
	ColBg      = rl.NewColor(18, 18, 24, 255)
	ColPanel   = rl.NewColor(30, 30, 50, 255)
	ColText    = rl.NewColor(220, 220, 220, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
	ColAccent  = rl.NewColor(100, 200, 255, 255)
	ColError   = rl.NewColor(255, 80, 80, 255)
	ColGrid    = rl.NewColor(100, 100, 100, 100)
	ColMarker  = rl.NewColor(255, 220, 0, 255)
)

type App struct {
	Session   *calc.Session
	Font      rl.Font
	Width     int32
	Height    int32
	FocusText bool
	ShowAbout bool

	button    rl.Rectangle
	tableRows int
}

func initWindow(cfg config.WindowConfig) {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(rl.KeyEscape)
}

// loadFont loads a font that covers the degree and infinity glyphs.
func loadFont() rl.Font {
	glyphs := make([]rune, 0, 100)
	for r := rune(32); r < 127; r++ {
		glyphs = append(glyphs, r)
	}
	glyphs = append(glyphs, '°', '∞')
	font := rl.LoadFontEx(fontPath, 32, glyphs, int32(len(glyphs)))
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wraps s for drawing in a window of the configured size.
func NewApp(s *calc.Session, cfg config.WindowConfig) *App {
	return &App{
		Session:   s,
		Font:      loadFont(),
		Width:     int32(cfg.Width),
		Height:    int32(cfg.Height),
		FocusText: true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *calc.Session, cfg config.WindowConfig, log *slog.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()
	log.Info("window opened", "width", cfg.Width, "height", cfg.Height)
	app := NewApp(s, cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		a.FocusText = !a.FocusText
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.ShowAbout = !a.ShowAbout
	}

	submit := rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), a.button) {
		submit = true
	}
	if submit {
		_ = a.Session.Submit()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && a.Session.ShowTable() {
		if wheel > 0 {
			a.Session.ScrollTable(-3)
		} else {
			a.Session.ScrollTable(3)
		}
	}

	if a.FocusText {
		a.updateText()
	} else {
		a.updateTable()
	}
}

func (a *App) updateText() {
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		a.Session.Type(string(rune(c)))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		a.Session.Backspace()
	}
}

func (a *App) updateTable() {
	// Drain typed characters so they do not land in the field later.
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Session.ToggleTable()
	}
	step := 1
	page := a.tableRows
	if page < 1 {
		page = 1
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		a.Session.ScrollTable(page)
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		a.Session.ScrollTable(-page)
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		step = 10
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.Session.NudgeStart(-step)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.Session.NudgeStart(step)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		a.Session.NudgeEnd(-step)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		a.Session.NudgeEnd(step)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	y := float32(margin)
	a.text("Trig Calculator with Lookup Table", margin, y, 28, ColText)
	y += 48

	a.text("Angle (degrees):", margin, y+6, 20, ColTextDim)
	field := rl.NewRectangle(220, y, 220, 34)
	border := ColTextDim
	if a.FocusText {
		border = ColAccent
	}
	rl.DrawRectangleRec(field, ColPanel)
	rl.DrawRectangleLinesEx(field, 1, border)
	cursor := ""
	if a.FocusText && int(rl.GetTime()*2)%2 == 0 {
		cursor = "_"
	}
	a.text(a.Session.Input()+cursor, field.X+8, y+6, 20, ColText)

	a.button = rl.NewRectangle(field.X+field.Width+12, y, 110, 34)
	rl.DrawRectangleRec(a.button, ColAccent)
	a.text("Calculate", a.button.X+10, y+6, 20, ColBg)
	y += 48

	if msg := a.Session.Err(); msg != "" {
		a.text(msg, margin, y, 18, ColError)
		y += 28
	}

	if lines := a.Session.Lines(); lines != nil {
		panel := rl.NewRectangle(margin, y, float32(a.Width)-2*margin, 130)
		rl.DrawRectangleRec(panel, ColPanel)
		a.text(fmt.Sprintf("Result for %s°:", a.Session.Submitted()), panel.X+12, panel.Y+10, 22, ColText)
		for i, line := range lines {
			a.text(line, panel.X+12, panel.Y+44+float32(i)*26, 20, ColAccent)
		}
		y += panel.Height + 16
	}

	if a.ShowAbout {
		for _, line := range []string{
			"Sin and cos come from a table precomputed for every degree 0..359.",
			"Angles are rounded and reduced into the table instead of evaluated.",
		} {
			a.text(line, margin, y, 16, ColTextDim)
			y += 22
		}
		y += 6
	}

	check := "[ ]"
	if a.Session.ShowTable() {
		check = "[x]"
	}
	r := a.Session.Range()
	a.text(fmt.Sprintf("%s Show lookup table   from %d   to %d", check, r.Start, r.End), margin, y, 18, ColText)
	y += 28

	if a.Session.ShowTable() {
		y = a.drawTable(y)
	}

	if res, ok := a.Session.Result(); ok {
		a.text("Sine Wave", margin, y, 22, ColText)
		y += 30
		width := float32(math.Min(float64(a.Width-2*margin), 600))
		height := float32(200)
		if a.Session.ShowTable() {
			height = compactWave
		}
		a.drawWave(rl.NewRectangle(margin, y, width, height), res.Angle)
	}

	hint := "enter: calculate   tab: table controls   f1: about   esc: quit"
	if !a.FocusText {
		hint = "space: toggle   left/right: from   up/down: to   shift: x10   pgup/pgdn: scroll   tab: input"
	}
	a.text(hint, margin, float32(a.Height)-28, 16, ColTextDim)

	rl.EndDrawing()
}

// drawTable lists a scrollable window of the current range in the space
// above the wave panel.
func (a *App) drawTable(y float32) float32 {
	cols := []float32{margin, margin + 110, margin + 250, margin + 390}
	for i, h := range []string{"Deg (°)", "Sin", "Cos", "Tan"} {
		a.text(h, cols[i], y, 18, ColText)
	}
	y += 24

	reserve := float32(60)
	if _, ok := a.Session.Result(); ok {
		reserve = 30 + compactWave + 40
	}
	a.tableRows = int((float32(a.Height) - y - reserve - 24) / 20)
	entries, first, total := a.Session.VisibleEntries(a.tableRows)
	for i, e := range entries {
		if (first+i)%2 == 1 {
			rl.DrawRectangle(margin-4, int32(y)-2, 520, 20, ColPanel)
		}
		a.text(fmt.Sprintf("%d", e.Degree), cols[0], y, 16, ColTextDim)
		a.text(lut.FormatValue(e.Sin), cols[1], y, 16, ColTextDim)
		a.text(lut.FormatValue(e.Cos), cols[2], y, 16, ColTextDim)
		a.text(lut.FormatValue(e.Tan), cols[3], y, 16, ColTextDim)
		y += 20
	}
	if len(entries) < total {
		a.text(fmt.Sprintf("rows %d-%d of %d  (wheel or pgup/pgdn to scroll)", first+1, first+len(entries), total),
			margin, y+2, 14, ColTextDim)
		y += 20
	}
	return y + 12
}

func (a *App) drawWave(rect rl.Rectangle, angle float64) {
	rl.DrawRectangleRec(rect, ColPanel)
	axis := rect.Y + rect.Height/2
	amp := rect.Height * 0.4

	rl.DrawLineEx(rl.NewVector2(rect.X, axis), rl.NewVector2(rect.X+rect.Width, axis), 1, rl.Gray)
	for q := 0; q <= 4; q++ {
		x := rect.X + rect.Width*float32(q)/4
		rl.DrawLineEx(rl.NewVector2(x, rect.Y), rl.NewVector2(x, rect.Y+rect.Height), 0.5, ColGrid)
		label := fmt.Sprintf("%d°", q*90)
		a.text(label, x-float32(len(label))*4, rect.Y+rect.Height-18, 14, rl.LightGray)
	}

	points := int(rect.Width * 5)
	prev := rl.NewVector2(rect.X, axis)
	for i := 1; i <= points; i++ {
		t := float64(i) / float64(points)
		p := rl.NewVector2(rect.X+rect.Width*float32(t), axis-float32(math.Sin(2*math.Pi*t))*amp)
		rl.DrawLineEx(prev, p, 2, ColAccent)
		prev = p
	}

	h := plot.Highlight(angle)
	hx := rect.X + rect.Width*float32(h/360)
	hy := axis - float32(math.Sin(h*lut.DegToRad))*amp
	rl.DrawLineEx(rl.NewVector2(hx, axis), rl.NewVector2(hx, hy), 1, ColMarker)
	rl.DrawCircle(int32(hx), int32(hy), 5, rl.Red)
	label := fmt.Sprintf("%d°", int(angle))
	a.text(label, hx-float32(len(label))*4, hy-24, 16, rl.White)
}

func (a *App) text(s string, x, y, size float32, col color.RGBA) {
	rl.DrawTextEx(a.Font, s, rl.NewVector2(x, y), size, 1, col)
}
