// Command huewindow shows the hue picker in a desktop window. The wheel
// angle of the selector is printed in the picked color in the top-right
// corner.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/hueseek"
	"github.com/gogpu/hueseek/internal/config"
	"github.com/gogpu/hueseek/ring"
)

type Game struct {
	cfg config.Config
	bar *hueseek.SeekBar

	width, height int
	dirty         bool
	pressed       bool

	ringImg  *ebiten.Image
	labelImg *ebiten.Image
	label    string
}

func newGame(cfg config.Config) (*Game, error) {
	g := &Game{cfg: cfg}
	bar, err := hueseek.New(append(cfg.Options(), hueseek.WithInvalidator(g.markDirty))...)
	if err != nil {
		return nil, err
	}
	g.bar = bar
	return g, nil
}

func (g *Game) markDirty() { g.dirty = true }

func (g *Game) Update() error {
	if g.width == 0 {
		return nil
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressed = true
		g.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerDown, X: x, Y: y})
	case g.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerMove, X: x, Y: y})
	case g.pressed:
		g.pressed = false
		g.bar.HandlePointer(hueseek.PointerEvent{Kind: hueseek.PointerUp, X: x, Y: y})
	}

	if g.dirty {
		if err := g.refresh(); err != nil {
			return err
		}
	}
	return nil
}

// refresh rebuilds the cached ring and label images.
func (g *Game) refresh() error {
	g.dirty = false
	d := g.bar.RenderData()

	if g.ringImg == nil || g.ringImg.Bounds().Dx() != g.width || g.ringImg.Bounds().Dy() != g.height {
		img, err := ring.Render(d, ring.WithoutKnob(), ring.WithBackground(hueseek.Color(g.cfg.Background)))
		if err != nil {
			return err
		}
		if g.ringImg != nil {
			g.ringImg.Deallocate()
		}
		g.ringImg = ebiten.NewImageFromImage(img)
	}

	label := strconv.FormatFloat(float64(d.Angle), 'f', -1, 64)
	if label != g.label || g.labelImg == nil {
		g.label = label
		w := font.MeasureString(basicfont.Face7x13, label).Ceil()
		img := image.NewRGBA(image.Rect(0, 0, max(w, 1), basicfont.Face7x13.Height))
		ring.DrawLabel(img, 0, basicfont.Face7x13.Ascent, label, d.Color)
		if g.labelImg != nil {
			g.labelImg.Deallocate()
		}
		g.labelImg = ebiten.NewImageFromImage(img)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.ringImg == nil {
		return
	}
	screen.DrawImage(g.ringImg, nil)

	d := g.bar.RenderData()
	vector.DrawFilledCircle(screen, float32(d.SelectorX), float32(d.SelectorY),
		float32(d.Geometry.SelectorRadius), d.SelectorColor, true)

	if g.labelImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(g.width-g.labelImg.Bounds().Dx()-4), 4)
		screen.DrawImage(g.labelImg, op)
	}
}

// Layout resizes the picker to fill the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.bar.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	verbose := flag.Bool("v", false, "log engine decisions to stderr")
	flag.Parse()

	if *verbose {
		hueseek.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("hueseek")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
