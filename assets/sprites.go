package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-invaders/config"
)

// Sprites holds every texture the renderer needs. They are generated at
// startup instead of loaded from disk, so the repository ships no binary
// assets.
type Sprites struct {
	Player         *ebiten.Image
	PlayerLaser    *ebiten.Image
	Enemy          *ebiten.Image
	EnemyLaser     *ebiten.Image
	ExplosionSheet *ebiten.Image
}

// NewSprites generates the placeholder sprite set
func NewSprites() *Sprites {
	return &Sprites{
		Player:         shipImage(config.PlayerWidth, config.PlayerHeight, color.NRGBA{80, 220, 120, 255}, true),
		PlayerLaser:    laserImage(config.PlayerLaserWidth, config.PlayerLaserHeight, color.NRGBA{140, 240, 255, 255}),
		Enemy:          shipImage(config.EnemyWidth, config.EnemyHeight, color.NRGBA{230, 90, 70, 255}, false),
		EnemyLaser:     laserImage(config.EnemyLaserWidth, config.EnemyLaserHeight, color.NRGBA{255, 170, 60, 255}),
		ExplosionSheet: explosionSheetImage(),
	}
}

// shipImage draws a filled triangle with a dark outline; pointUp selects
// whether the nose points up (player) or down (enemy)
func shipImage(w, h float64, clr color.NRGBA, pointUp bool) *ebiten.Image {
	width, height := int(w), int(h)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	outline := color.NRGBA{20, 20, 20, 255}

	for y := 0; y < height; y++ {
		// Fraction of the way from nose to tail
		t := float64(y) / float64(height-1)
		if !pointUp {
			t = 1 - t
		}
		// Hull widens linearly from nose to tail
		halfSpan := t * float64(width) / 2.
		centerX := float64(width) / 2.
		for x := 0; x < width; x++ {
			d := abs(float64(x) - centerX)
			switch {
			case d < halfSpan-1:
				img.SetNRGBA(x, y, clr)
			case d < halfSpan+1:
				img.SetNRGBA(x, y, outline)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}

// laserImage draws a bright bolt with a softer sheath
func laserImage(w, h float64, clr color.NRGBA) *ebiten.Image {
	width, height := int(w), int(h)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	sheath := color.NRGBA{clr.R / 2, clr.G / 2, clr.B / 2, 200}

	centerX := float64(width-1) / 2.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if abs(float64(x)-centerX) <= float64(width)/4. {
				img.SetNRGBA(x, y, clr)
			} else {
				img.SetNRGBA(x, y, sheath)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}

// explosionSheetImage draws the 4x4 animation sheet: a ring that expands
// across the cell and fades out over the frame sequence
func explosionSheetImage() *ebiten.Image {
	cell := config.ExplosionCellSize
	cols := config.ExplosionSheetCols
	rows := config.ExplosionFrameCount / cols
	img := image.NewNRGBA(image.Rect(0, 0, cell*cols, cell*rows))

	for frame := 0; frame < config.ExplosionFrameCount; frame++ {
		originX := (frame % cols) * cell
		originY := (frame / cols) * cell

		progress := float64(frame) / float64(config.ExplosionFrameCount-1)
		radius := progress * float64(cell) / 2.
		thickness := (1 - progress) * 10.
		alpha := uint8((1 - progress) * 255)

		center := float64(cell) / 2.
		for y := 0; y < cell; y++ {
			for x := 0; x < cell; x++ {
				dx := float64(x) - center
				dy := float64(y) - center
				d := abs(math.Sqrt(dx*dx+dy*dy) - radius)
				if d <= thickness {
					img.SetNRGBA(originX+x, originY+y, color.NRGBA{255, 200, 80, alpha})
				}
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}

// ExplosionFrame returns the sub-image for one animation frame
func (s *Sprites) ExplosionFrame(index int) *ebiten.Image {
	cell := config.ExplosionCellSize
	x := (index % config.ExplosionSheetCols) * cell
	y := (index / config.ExplosionSheetCols) * cell
	return s.ExplosionSheet.SubImage(image.Rect(x, y, x+cell, y+cell)).(*ebiten.Image)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
