package app

import (
	"context"
	"image"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/config"
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/df07/go-pick-raytracer/pkg/input"
	"github.com/df07/go-pick-raytracer/pkg/lights"
	"github.com/df07/go-pick-raytracer/pkg/renderer"
	"github.com/df07/go-pick-raytracer/pkg/scene"
)

// Mode selects which of the two scenes is active
type Mode int

const (
	ModePick Mode = iota
	ModeRaytrace
)

func (m Mode) String() string {
	if m == ModeRaytrace {
		return "Raytracing"
	}
	return "Picking"
}

// Controls is the key reference printed at startup
const Controls = `================= CONTROLS =================
T       : switch Picking <-> Raytracing
Click   : select/deselect a cube (Picking)
H       : show/hide HUD (Raytracing)
Space   : pause/resume light animation (Raytracing)
W / S   : move light forward / back
A / D   : move light left / right
R / F   : move light up / down
P       : print light position
Esc     : quit
============================================
`

var hudLines = []string{
	"Controls (Raytracing):",
	"  T       : switch Picking <-> Raytracing",
	"  Space   : pause/resume light animation",
	"  W/S/A/D : move light in XZ",
	"  R/F     : move light in Y",
	"  H       : show/hide this help",
	"  P       : print light position (console)",
}

// App owns both scenes and routes updates and input to the active one.
// All methods must be called from the same goroutine.
type App struct {
	mode      Mode
	pick      *scene.Scene
	rtCamera  *camera.Camera
	rtScene   renderer.SceneConfig
	light     *lights.OrbitLight
	raytracer *renderer.Raytracer
	keys      input.KeySet
	showHUD   bool
	quit      bool
	width     int
	height    int
	logger    core.Logger
}

// New builds the app from cfg in pick mode. A nil logger discards output.
func New(cfg config.Config, logger core.Logger) *App {
	if logger == nil {
		logger = core.NopLogger{}
	}
	aspect := cfg.Aspect()

	a := &App{
		mode:      ModePick,
		pick:      scene.NewPickScene(cfg.PickCamera(aspect), cfg.CubeSpecs(), logger),
		rtCamera:  camera.New(cfg.RaytraceCamera(aspect)),
		rtScene:   cfg.SceneConfig(),
		light:     lights.NewOrbitLight(cfg.OrbitConfig()),
		raytracer: renderer.NewRaytracer(cfg.RendererConfig(), logger),
		keys:      input.NewKeySet(),
		showHUD:   true,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
		logger:    logger,
	}
	a.logger.Printf("[Mode] %s\n", a.mode)
	return a
}

// Mode returns the active mode
func (a *App) Mode() Mode { return a.mode }

// SetMode switches the active scene
func (a *App) SetMode(m Mode) {
	a.mode = m
	a.logger.Printf("[Mode] %s\n", m)
}

// ToggleMode switches between picking and raytracing
func (a *App) ToggleMode() {
	if a.mode == ModePick {
		a.SetMode(ModeRaytrace)
	} else {
		a.SetMode(ModePick)
	}
}

// PickScene returns the box-picking scene
func (a *App) PickScene() *scene.Scene { return a.pick }

// Light returns the raytraced scene's light
func (a *App) Light() *lights.OrbitLight { return a.light }

// Keys returns the held keys
func (a *App) Keys() input.KeySet { return a.keys }

// HUDVisible reports whether the raytracing help overlay is shown
func (a *App) HUDVisible() bool { return a.showHUD }

// QuitRequested reports whether Escape was pressed
func (a *App) QuitRequested() bool { return a.quit }

// Size returns the viewport size in pixels
func (a *App) Size() (width, height int) { return a.width, a.height }

// Update advances the active scene by dt seconds
func (a *App) Update(dt float64) {
	switch a.mode {
	case ModePick:
		a.pick.Update(dt)
	case ModeRaytrace:
		a.light.Update(dt, input.LightMove(a.keys))
	}
}

// KeyDown handles a key press
func (a *App) KeyDown(k input.Key) {
	a.keys.Press(k)

	switch k {
	case input.KeyT:
		a.ToggleMode()
		return
	case input.KeyEscape:
		a.quit = true
		return
	}

	if a.mode != ModeRaytrace {
		return
	}
	switch k {
	case input.KeySpace:
		a.light.TogglePause()
	case input.KeyH:
		a.showHUD = !a.showHUD
	case input.KeyP:
		a.logger.Printf("%s\n", a.light)
	}
}

// KeyUp handles a key release
func (a *App) KeyUp(k input.Key) {
	a.keys.Release(k)
}

// Click picks at pixel (px, py) measured from the top-left corner.
// It does nothing outside pick mode.
func (a *App) Click(px, py float64) scene.PickResult {
	u := px / float64(max(1, a.width))
	v := py / float64(max(1, a.height))
	return a.ClickUV(u, v)
}

// ClickBottomLeft is Click for backends whose y axis starts at the bottom
func (a *App) ClickBottomLeft(px, py float64) scene.PickResult {
	return a.Click(px, float64(a.height)-py)
}

// ClickUV picks at normalized screen coordinates, v = 0 at the top
func (a *App) ClickUV(u, v float64) scene.PickResult {
	if a.mode != ModePick {
		return scene.PickResult{}
	}
	return a.pick.Pick(u, v)
}

// Resize updates the viewport of both scenes
func (a *App) Resize(width, height int) {
	a.width, a.height = width, height
	a.pick.Resize(width, height)
	a.rtCamera.SetAspect(float64(width) / float64(max(1, height)))
}

// Uniforms snapshots the raytraced scene for rendering
func (a *App) Uniforms() renderer.Uniforms {
	return renderer.NewUniforms(a.rtCamera, a.rtScene, a.light.Position())
}

// RenderFrame raytraces the current frame at the viewport size
func (a *App) RenderFrame(ctx context.Context) (*image.RGBA, renderer.RenderStats, error) {
	return a.RenderFrameSize(ctx, a.width, a.height)
}

// RenderFrameSize raytraces the current frame at an explicit size. The aspect
// ratio stays that of the viewport, so a smaller frame can be scaled up.
func (a *App) RenderFrameSize(ctx context.Context, width, height int) (*image.RGBA, renderer.RenderStats, error) {
	return a.raytracer.Render(ctx, a.Uniforms(), width, height)
}

// HUDLines returns the overlay text, or nil when nothing should be drawn
func (a *App) HUDLines() []string {
	if a.mode != ModeRaytrace || !a.showHUD {
		return nil
	}
	lines := make([]string, len(hudLines), len(hudLines)+1)
	copy(lines, hudLines)
	if !a.light.Animating() {
		lines = append(lines, "  [paused]")
	}
	return lines
}
