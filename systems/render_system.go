package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-invaders/assets"
	"ebiten-invaders/components"
	"ebiten-invaders/config"
	"ebiten-invaders/ecs"
)

// RenderSystem draws every visible entity. It is not registered as a world
// system; the game loop calls Draw from ebiten's draw callback so that
// simulation and presentation stay separate.
type RenderSystem struct {
	sprites    *assets.Sprites
	winW, winH float64
}

// NewRenderSystem creates a render system using the given sprite set
func NewRenderSystem(sprites *assets.Sprites, winW, winH float64) *RenderSystem {
	return &RenderSystem{sprites: sprites, winW: winW, winH: winH}
}

// drawable pairs a sprite with the transform it is drawn at
type drawable struct {
	img *ebiten.Image
	pos *components.PositionComponent
}

// Draw renders the frame, back to front by Z depth
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.NRGBA{10, 10, 10, 255})

	drawables := make([]drawable, 0, 16)
	for _, entity := range world.GetEntitiesWithComponent(components.Position) {
		img := s.spriteFor(world, entity.ID)
		if img == nil {
			continue
		}
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		drawables = append(drawables, drawable{img: img, pos: posComp.(*components.PositionComponent)})
	}

	sort.Slice(drawables, func(i, j int) bool {
		return drawables[i].pos.Z < drawables[j].pos.Z
	})

	for _, d := range drawables {
		s.drawSprite(screen, d.img, d.pos)
	}
}

// spriteFor picks the sprite for an entity from its marker components
func (s *RenderSystem) spriteFor(world *ecs.World, id ecs.EntityID) *ebiten.Image {
	switch {
	case world.HasComponent(id, components.Player):
		return s.sprites.Player
	case world.HasComponent(id, components.Enemy):
		return s.sprites.Enemy
	case world.HasComponent(id, components.Explosion):
		explComp, _ := world.GetComponent(id, components.Explosion)
		index := explComp.(*components.ExplosionComponent).FrameIndex
		if index >= config.ExplosionFrameCount {
			return nil
		}
		return s.sprites.ExplosionFrame(index)
	case world.HasComponent(id, components.FromPlayer):
		return s.sprites.PlayerLaser
	case world.HasComponent(id, components.FromEnemy):
		return s.sprites.EnemyLaser
	}
	return nil
}

// drawSprite maps the centered world transform (origin mid-window, +Y up)
// to ebiten screen coordinates and draws the scaled sprite centered on it
func (s *RenderSystem) drawSprite(screen *ebiten.Image, img *ebiten.Image, pos *components.PositionComponent) {
	bounds := img.Bounds()
	scaledW := float64(bounds.Dx()) * pos.Scale
	scaledH := float64(bounds.Dy()) * pos.Scale

	screenX := s.winW/2. + pos.X
	screenY := s.winH/2. - pos.Y

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pos.Scale, pos.Scale)
	op.GeoM.Translate(screenX-scaledW/2., screenY-scaledH/2.)
	screen.DrawImage(img, op)
}
