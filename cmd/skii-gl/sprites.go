package main

import (
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/asset"
	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/render"
)

var (
	fallbackTile   = color.RGBA{240, 244, 255, 255}
	fallbackObject = color.RGBA{70, 110, 70, 255}
	fallbackPlayer = color.RGBA{215, 38, 61, 255}
)

// Sprites holds one image per catalog entry, indexed by rank
type Sprites struct {
	Tiles   []*ebiten.Image
	Objects []*ebiten.Image
	Player  *ebiten.Image
}

// descriptorFS is where texture paths in descriptors are resolved
func descriptorFS(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(asset.Descriptors, asset.DescriptorDir)
	}
	return os.DirFS(dir), nil
}

// LoadSprites loads each texture, substituting a flat swatch in the
// descriptor color when the texture is absent or unreadable
func LoadSprites(cat *catalog.Catalog, fsys fs.FS, cellPx int, log logrus.FieldLogger) *Sprites {
	load := func(v catalog.Visual, fallback color.RGBA, shape func(int, color.RGBA) *ebiten.Image) *ebiten.Image {
		if v.Texture != "" {
			img, _, err := ebitenutil.NewImageFromFileSystem(fsys, v.Texture)
			if err == nil {
				return img
			}
			log.WithError(err).WithField("texture", v.Texture).Warn("texture unavailable, using color swatch")
		}
		return shape(cellPx, render.RGBA(v.Color, fallback))
	}

	s := &Sprites{
		Tiles:   make([]*ebiten.Image, cat.TileCount()),
		Objects: make([]*ebiten.Image, cat.ObjectCount()),
	}
	for i := range s.Tiles {
		s.Tiles[i] = load(cat.Tile(cat.MustTile(i)).Visual, fallbackTile, swatch)
	}
	for i := range s.Objects {
		s.Objects[i] = load(cat.Object(cat.MustObject(i)).Visual, fallbackObject, disc)
	}
	s.Player = load(cat.Player().Visual, fallbackPlayer, arrow)
	return s
}

func swatch(size int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

func disc(size int, c color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(rasterize(size, c, func(x, y, half int) bool {
		dx, dy := x-half, y-half
		return dx*dx+dy*dy <= half*half
	}))
}

// arrow points up the image, which is downhill on screen
func arrow(size int, c color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(rasterize(size, c, func(x, y, half int) bool {
		spread := y / 2
		return x >= half-spread && x <= half+spread
	}))
}

func rasterize(size int, c color.RGBA, inside func(x, y, half int) bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if inside(x, y, half) {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
