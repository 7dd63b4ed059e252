package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/QJrocks/Convex-Hull-Quickhull-Visualizer/quickhull"
	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	. "github.com/quasilyte/gmath"
)

// Game implements ebiten.Game. It advances the hull stepper on a timer
// and draws whatever the stepper reports after each step.
type Game struct {
	initialized bool

	screenWidth  int
	screenHeight int

	seed         uint64
	pointCount   int
	distribution Distribution
	stepInterval time.Duration
	outfile      string

	debug bool

	now      time.Time
	lastStep time.Time

	stepper   quickhull.Stepper
	stepCount int
	running   bool
	paused    bool

	// discovery time per hull vertex, drives the pop-in animation
	foundAt  map[quickhull.Point]time.Time
	hullSeen int

	// the scene is rendered offscreen so screenshots can read it back
	canvas *ebiten.Image

	status string

	cursor  Vec
	clicked bool

	btnNewPoints  *Button
	btnPause      *Button
	btnScreenshot *Button
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return g.screenWidth, g.screenHeight
}

func (g *Game) Reset(seed uint64) {
	*g = Game{
		initialized: true,
		debug:       g.debug,
		canvas:      g.canvas,

		screenWidth:  g.screenWidth,
		screenHeight: g.screenHeight,

		seed:         seed,
		pointCount:   g.pointCount,
		distribution: g.distribution,
		stepInterval: g.stepInterval,
		outfile:      g.outfile,
	}

	g.now = time.Now()
	g.lastStep = g.now
	g.foundAt = map[quickhull.Point]time.Time{}

	rng := RandWithSeed(seed)
	points := GeneratePoints(rng, g.distribution, g.pointCount)

	if err := g.stepper.Reset(points); err != nil {
		// the point count is validated up front, so this only triggers
		// for a broken generator
		g.status = err.Error()
		return
	}

	g.running = true
	g.noteNewVertices()

	g.btnNewPoints = NewButton("New points (P)", NewPointsButtonColors)
	g.btnPause = NewButton("Pause (Space)", PauseButtonColors)
	g.btnScreenshot = NewButton("Screenshot (Q)", ScreenshotButtonColors)
	LayoutButtonsRow(Vec{X: 16, Y: 16}, 12, g.btnNewPoints, g.btnPause, g.btnScreenshot)
}

func (g *Game) Update() error {
	if !g.initialized {
		g.Reset(g.seed)
	}

	g.now = time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.Reset(g.seed + 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.screenshot()
	}

	g.cursor, g.clicked = Clicked()
	if !g.clicked {
		g.cursor = CursorPosition()
	}

	g.btnNewPoints.Hover(g.cursor)
	g.btnPause.Hover(g.cursor)
	g.btnScreenshot.Hover(g.cursor)

	if g.btnNewPoints.IsClicked(g.cursor, g.clicked) {
		g.Reset(g.seed + 1)
	}

	if g.btnPause.IsClicked(g.cursor, g.clicked) {
		g.togglePause()
	}

	if g.btnScreenshot.IsClicked(g.cursor, g.clicked) {
		g.screenshot()
	}

	// advance the hull, one unit of work per interval
	if g.running && !g.paused && g.now.Sub(g.lastStep) >= g.stepInterval {
		g.lastStep = g.now

		if g.stepper.Step() {
			g.stepCount++
			g.noteNewVertices()
		} else {
			g.running = false
			g.finish()
		}
	}

	return nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused

	if g.btnPause != nil {
		if g.paused {
			g.btnPause.Text = "Resume (Space)"
		} else {
			g.btnPause.Text = "Pause (Space)"
		}
	}
}

// noteNewVertices records the discovery time of hull vertices that
// appeared since the previous step.
func (g *Game) noteNewVertices() {
	hull := g.stepper.Hull()

	for _, p := range hull[g.hullSeen:] {
		g.foundAt[p] = g.now
	}

	g.hullSeen = len(hull)
}

// finish orders the hull and writes it out. A failed write is only
// reported; the in-memory result stays valid.
func (g *Game) finish() {
	hull, err := g.stepper.FinalHull()
	if err != nil {
		g.status = err.Error()
		return
	}

	if err := WriteHullPointsFile(g.outfile, hull); err != nil {
		log.Printf("[err] %s", err)
		g.status = fmt.Sprintf("write failed: %s", err)
		return
	}

	g.status = fmt.Sprintf("%d vertices written to %s", len(hull), g.outfile)
}

func (g *Game) screenshot() {
	if g.canvas == nil {
		return
	}

	if err := SaveScreenshot(g.canvas, "result.png"); err != nil {
		log.Printf("[err] %s", err)
		g.status = fmt.Sprintf("screenshot failed: %s", err)
		return
	}

	g.status = "screenshot saved to result.png"
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.initialized {
		return
	}

	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.screenWidth, g.screenHeight)
	}

	g.drawScene(g.canvas)
	screen.DrawImage(g.canvas, nil)
}

func (g *Game) drawScene(target *ebiten.Image) {
	target.Fill(BackgroundColor)

	segA, segB := g.stepper.Segment()

	// the boundary segment currently being partitioned against
	strokeLine(target, pointVec(segA), pointVec(segB), 3, SegmentColor)

	// all candidate points, tinted by the side of the boundary they
	// fall on
	for _, p := range g.stepper.Points() {
		var c color.NRGBA

		switch det := quickhull.Det(segA, segB, p); {
		case det < 0:
			c = PointOutsideColor
		case det > 0:
			c = PointInsideColor
		default:
			c = PointOnLineColor
		}

		fillCircle(target, pointVec(p), pointRadius-2, c)
	}

	g.drawHull(target)

	// the local extreme pair of the set being worked on
	lo, hi := g.stepper.Extremes()
	fillCircle(target, pointVec(lo), pointRadius+1, ExtremeColor)
	fillCircle(target, pointVec(hi), pointRadius+1, ExtremeColor)

	// the latest hull vertex found
	furthest := g.stepper.Furthest()
	fillCircle(target, pointVec(furthest), (pointRadius+1)*g.popScaleOf(furthest), FurthestColor)

	g.drawHUD(target)
}

func (g *Game) drawHull(target *ebiten.Image) {
	ordered := g.stepper.OrderedHull()
	if len(ordered) < 2 {
		return
	}

	for i := 0; i < len(ordered)-1; i++ {
		strokeLine(target, pointVec(ordered[i]), pointVec(ordered[i+1]), 4, HullEdgeColor)
	}

	// the closing edge gets its own color, like the reference renders
	strokeLine(target, pointVec(ordered[len(ordered)-1]), pointVec(ordered[0]), 4, HullClosingColor)

	for _, p := range ordered {
		fillCircle(target, pointVec(p), pointRadius*g.popScaleOf(p), HullEdgeColor)
	}
}

// popScaleOf eases freshly found vertices from zero to full size.
func (g *Game) popScaleOf(p quickhull.Point) float64 {
	found, ok := g.foundAt[p]
	if !ok {
		return 1
	}

	f := min(1, g.now.Sub(found).Seconds()/0.3)
	return ease.OutCubic(f)
}

func (g *Game) drawHUD(target *ebiten.Image) {
	g.btnNewPoints.Draw(target)
	g.btnPause.Draw(target)
	g.btnScreenshot.Draw(target)

	pos := Vec{X: 16, Y: float64(g.screenHeight) - 56}
	hudRectangle(target, &pos, fmt.Sprintf("Seed %d", g.seed), HudRectangleColor)
	hudRectangle(target, &pos, fmt.Sprintf("%d points", len(g.stepper.Points())), HudRectangleColor)
	hudRectangle(target, &pos, fmt.Sprintf("Step %d", g.stepCount), HudRectangleColor)
	hudRectangle(target, &pos, fmt.Sprintf("Hull %d", g.hullSeen), HudRectangleColor)

	if g.status != "" {
		hudRectangle(target, &pos, g.status, HudRectangleColor)
	}

	if g.paused {
		center := Vec{X: float64(g.screenWidth) / 2, Y: 40}
		DrawTextCenter(target, "Paused", Font24, center, HudRectangleColor)
	}

	if g.debug {
		g.drawDebugText(target)
	}
}

func (g *Game) drawDebugText(target *ebiten.Image) {
	pos := Vec{X: 16, Y: 72}

	t := fmt.Sprintf("%1.1f fps, seed %d", ebiten.ActualFPS(), g.seed)
	DrawTextLeft(target, t, Font16, pos, DebugColor)

	segA, segB := g.stepper.Segment()
	pos.Y += 24
	t = fmt.Sprintf("Segment (%d,%d) -> (%d,%d)", segA.X, segA.Y, segB.X, segB.Y)
	DrawTextLeft(target, t, Font16, pos, DebugColor)

	pos.Y += 24
	t = fmt.Sprintf("Steps: %d, hull vertices: %d", g.stepCount, g.hullSeen)
	DrawTextLeft(target, t, Font16, pos, DebugColor)
}

func strokeLine(target *ebiten.Image, a, b Vec, width float32, c color.Color) {
	vector.StrokeLine(target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
}

func fillCircle(target *ebiten.Image, center Vec, radius float64, c color.Color) {
	vector.DrawFilledCircle(target, float32(center.X), float32(center.Y), float32(radius), c, true)
}
