package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	stdlog "log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/internal/testbed"
	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
	"github.com/koteyur/impulse2d/pkg/explosions"
	"github.com/koteyur/impulse2d/pkg/rays"
	"github.com/koteyur/impulse2d/pkg/vecmath"
	"github.com/koteyur/impulse2d/pkg/world"
)

const (
	screenWidth  = 1200
	screenHeight = 720

	// ebiten calls Update this many times a second by default
	tickSeconds = 1.0 / 60

	blastPower   = 2e7
	blastRadius  = 120
	shatterForce = 1e6
)

var (
	dynamicColor = color.RGBA{0, 255, 0, 255}
	staticColor  = color.RGBA{128, 128, 128, 255}
	contactColor = color.RGBA{255, 0, 0, 255}
	rayColor     = color.RGBA{255, 255, 0, 96}
	jointColor   = color.RGBA{0, 160, 255, 255}
)

type Game struct {
	logger   log.Log
	settings dynamics.Settings
	scene    int
	world    *world.World
	camera   testbed.Camera

	physicsActive bool
	showShadows   bool
}

func newGame(logger log.Log) (*Game, error) {
	settings := dynamics.DefaultSettings()
	settings.Iterations = 20
	g := &Game{
		logger:   logger,
		settings: settings,
		camera:   testbed.Camera{Center: vecmath.Vec(screenWidth/2, screenHeight*0.55), Zoom: 1.5},
	}
	return g, g.load(0)
}

func (g *Game) load(i int) error {
	w, err := testbed.NewWorld(testbed.Scenes[i], g.settings, g.logger)
	if err != nil {
		return fmt.Errorf("scene %s: %w", testbed.Scenes[i].Name, err)
	}
	g.scene = i
	g.world = w
	g.logger.Info("scene loaded", log.String("scene", testbed.Scenes[i].Name), log.Bool("friction", g.settings.Friction))
	return nil
}

func (g *Game) cursor() vecmath.Vector2 {
	x, y := ebiten.CursorPosition()
	return g.camera.ToWorld(float64(x), float64(y))
}

func (g *Game) Update() error {
	touches := inpututil.AppendJustPressedTouchIDs(nil)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || len(touches) > 0 {
		g.physicsActive = !g.physicsActive
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) && i < len(testbed.Scenes) {
			if err := g.load(i); err != nil {
				return err
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.settings.Friction = !g.settings.Friction
		if err := g.load(g.scene); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.showShadows = !g.showShadows
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.world.ApplyExplosion(explosions.NewProximity(g.cursor(), blastRadius), blastPower)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.ApplyExplosion(explosions.NewRaycast(g.cursor(), 100, blastRadius*2), blastPower)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		p := g.cursor()
		for _, b := range g.world.Bodies() {
			if !b.IsStatic() && collision.PointInside(b, p) {
				if _, err := g.world.Shatter(b, p, shatterForce); err != nil {
					return err
				}
				break
			}
		}
	}

	if g.physicsActive {
		if _, err := g.world.Advance(context.Background(), tickSeconds); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, body := range g.world.Bodies() {
		clr := dynamicColor
		if body.IsStatic() {
			clr = staticColor
		}
		n := body.Shape.VertexCount()
		for j := 0; j < n; j++ {
			a := g.camera.ToScreen(body.Shape.WorldVertex(body.Position, j))
			b := g.camera.ToScreen(body.Shape.WorldVertex(body.Position, (j+1)%n))
			ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, clr)
		}
	}

	for _, arb := range g.world.Arbiters() {
		for i := 0; i < arb.ContactCount; i++ {
			a := g.camera.ToScreen(arb.Contacts[i])
			b := g.camera.ToScreen(arb.Contacts[i].Add(arb.Normal.Scale(8)))
			ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, contactColor)
		}
	}

	for _, j := range g.world.Joints() {
		from, to := j.Endpoints()
		a, b := g.camera.ToScreen(from), g.camera.ToScreen(to)
		ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, jointColor)
	}

	if g.showShadows {
		g.drawShadows(screen)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Scene %d: %s (1-%d to switch)\n<space> start/stop, F friction: %v, L line of sight\nLMB blast, R ray blast, RMB shatter",
		g.scene+1, testbed.Scenes[g.scene].Name, len(testbed.Scenes), g.settings.Friction,
	))
}

func (g *Game) drawShadows(screen *ebiten.Image) {
	caster := rays.ShadowCaster{Origin: g.cursor(), Distance: 1000}
	origin := g.camera.ToScreen(caster.Origin)
	for _, r := range caster.Project(g.world.Bodies()) {
		end := r.Ray.End()
		if r.OK {
			end = r.Hit.Point
		}
		p := g.camera.ToScreen(end)
		ebitenutil.DrawLine(screen, origin.X, origin.Y, p.X, p.Y, rayColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	debug := flag.Bool("debug", false, "log every step")
	flag.Parse()

	level := log.LevelInfo
	if *debug {
		level = log.LevelDebug
	}
	logger := log.New(level)
	defer logger.Sync()

	game, err := newGame(logger)
	if err != nil {
		stdlog.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("impulse2d testbed")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("testbed stopped", log.Error(err))
	}
}
