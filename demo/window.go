package main

import (
	"context"
	"image/color"
	"sort"
	"strings"

	"github.com/df07/go-pick-raytracer/pkg/app"
	"github.com/df07/go-pick-raytracer/pkg/renderer"
	"github.com/df07/go-pick-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const tps = 60

// runWindow opens the demo window and blocks until it closes
func runWindow(a *app.App, title string, scale int) error {
	w, h := a.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	// DrawTriangles samples the center texel of this image; vertex colors do the rest
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	g := &demoGame{
		app:   a,
		scale: max(1, scale),
		white: white,
	}
	return ebiten.RunGame(g)
}

type demoGame struct {
	app   *app.App
	scale int
	white *ebiten.Image
	frame *ebiten.Image
	keys  []ebiten.Key
	tris  []triangle
	verts []ebiten.Vertex
	idx   []uint16
}

// triangle is one projected cube face half, kept for back-to-front sorting
type triangle struct {
	pts   [3]mgl32.Vec3 // screen x, y and NDC depth
	color [3]mgl32.Vec3
	depth float32
}

func (g *demoGame) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := translateKey(k); ok {
			g.app.KeyDown(key)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := translateKey(k); ok {
			g.app.KeyUp(key)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.app.Click(float64(x), float64(y))
	}

	if g.app.QuitRequested() {
		return ebiten.Termination
	}

	g.app.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor())

	switch g.app.Mode() {
	case app.ModePick:
		g.drawPickScene(screen)
	case app.ModeRaytrace:
		g.drawRaytrace(screen)
		g.drawHUD(screen)
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.app.Size(); w != outsideWidth || h != outsideHeight {
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func backgroundColor() color.RGBA {
	return renderer.ToRGBA(renderer.DefaultShading().Background)
}

// drawPickScene rasterizes the cubes with painter's-order triangles
func (g *demoGame) drawPickScene(screen *ebiten.Image) {
	w, h := g.app.Size()
	g.tris = g.tris[:0]

	commands := g.app.PickScene().DrawList()
	for _, cmd := range commands {
		g.tris = appendCube(g.tris, cmd.MVP32, float32(w), float32(h))
	}

	// Farthest first
	sort.Slice(g.tris, func(i, j int) bool { return g.tris[i].depth > g.tris[j].depth })

	g.verts = g.verts[:0]
	g.idx = g.idx[:0]
	for _, tri := range g.tris {
		for k := 0; k < 3; k++ {
			g.idx = append(g.idx, uint16(len(g.verts)))
			g.verts = append(g.verts, ebiten.Vertex{
				DstX:   tri.pts[k].X(),
				DstY:   tri.pts[k].Y(),
				SrcX:   1,
				SrcY:   1,
				ColorR: tri.color[k].X(),
				ColorG: tri.color[k].Y(),
				ColorB: tri.color[k].Z(),
				ColorA: 1,
			})
		}
	}
	screen.DrawTriangles(g.verts, g.idx, g.white, nil)

	for _, cmd := range commands {
		if cmd.Object.Selected() {
			drawEdges(screen, cmd.MVP32, float32(w), float32(h))
		}
	}
}

// project maps cube vertex i through mvp to screen space; false if behind the camera
func project(mvp mgl32.Mat4, i int, w, h float32) (mgl32.Vec3, bool) {
	v := scene.CubeVertices[i*scene.VertexStride : i*scene.VertexStride+3]
	clip := mvp.Mul4x1(mgl32.Vec4{v[0], v[1], v[2], 1})
	if clip.W() <= 1e-6 {
		return mgl32.Vec3{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec3{(ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h, ndc.Z()}, true
}

func appendCube(tris []triangle, mvp mgl32.Mat4, w, h float32) []triangle {
	var screenPts [8]mgl32.Vec3
	for i := range screenPts {
		p, ok := project(mvp, i, w, h)
		if !ok {
			return tris
		}
		screenPts[i] = p
	}

	for t := 0; t+2 < len(scene.CubeIndices); t += 3 {
		var tri triangle
		for k := 0; k < 3; k++ {
			i := int(scene.CubeIndices[t+k])
			c := scene.CubeVertices[i*scene.VertexStride+3 : i*scene.VertexStride+6]
			tri.pts[k] = screenPts[i]
			tri.color[k] = mgl32.Vec3{c[0], c[1], c[2]}
			tri.depth += screenPts[i].Z() / 3
		}
		tris = append(tris, tri)
	}
	return tris
}

func drawEdges(screen *ebiten.Image, mvp mgl32.Mat4, w, h float32) {
	for _, e := range scene.CubeEdges {
		a, okA := project(mvp, e[0], w, h)
		b, okB := project(mvp, e[1], w, h)
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(screen, a.X(), a.Y(), b.X(), b.Y(), 2, color.White, true)
	}
}

// drawRaytrace renders a reduced-resolution frame and scales it to the window
func (g *demoGame) drawRaytrace(screen *ebiten.Image) {
	w, h := g.app.Size()
	fw, fh := max(1, w/g.scale), max(1, h/g.scale)

	img, _, err := g.app.RenderFrameSize(context.Background(), fw, fh)
	if err != nil {
		ebitenutil.DebugPrintAt(screen, err.Error(), 16, h-24)
		return
	}

	if g.frame == nil || g.frame.Bounds().Dx() != fw || g.frame.Bounds().Dy() != fh {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(fw, fh)
	}
	g.frame.WritePixels(img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(fw), float64(h)/float64(fh))
	screen.DrawImage(g.frame, op)
}

func (g *demoGame) drawHUD(screen *ebiten.Image) {
	lines := g.app.HUDLines()
	if len(lines) == 0 {
		return
	}
	const lineHeight = 16
	vector.DrawFilledRect(screen, 8, 8, 320, float32(len(lines)*lineHeight+16), color.RGBA{0, 0, 0, 140}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 16, 16)
	ebitenutil.DebugPrintAt(screen, g.app.Light().String(), 16, len(lines)*lineHeight+24)
}
