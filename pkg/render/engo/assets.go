// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
)

const (
	// hudFontURL is the virtual asset path the embedded HUD font is
	// registered under.
	hudFontURL  = "fonts/gomono.ttf"
	hudFontSize = 20
)

// AssetManager loads sprites and fonts through engo's file store. It is the
// aircraft.AssetLoader of the graphical front end.
type AssetManager struct {
	load   func(urls ...string) error
	lookup func(url string) (aircraft.Sprite, error)

	sprites map[string]aircraft.Sprite
	font    *common.Font
	panel   common.Drawable
}

// NewAssetManager creates an asset manager backed by engo.Files.
func NewAssetManager() *AssetManager {
	return &AssetManager{
		load: engo.Files.Load,
		lookup: func(url string) (aircraft.Sprite, error) {
			tex, err := common.LoadedSprite(url)
			if err != nil {
				return nil, err
			}
			return tex, nil
		},
		sprites: make(map[string]aircraft.Sprite),
	}
}

// Preload reads the sprite files of every catalogued aircraft that has a
// profile. It must run inside the scene's Preload.
func (am *AssetManager) Preload() error {
	var urls []string
	for _, v := range aircraft.Variants() {
		p, err := aircraft.Resolve(v)
		if err != nil {
			continue
		}
		urls = append(urls, p.SpritePath)
	}
	if len(urls) == 0 {
		return nil
	}
	if err := am.load(urls...); err != nil {
		return fmt.Errorf("failed to preload sprites: %w", err)
	}
	return nil
}

// LoadSprite implements aircraft.AssetLoader.
func (am *AssetManager) LoadSprite(path string) (aircraft.Sprite, error) {
	if sprite, ok := am.sprites[path]; ok {
		return sprite, nil
	}
	sprite, err := am.lookup(path)
	if err != nil {
		return nil, err
	}
	am.sprites[path] = sprite
	return sprite, nil
}

// LoadFont registers the embedded monospace font and prepares it for the
// HUD. It needs a GL context.
func (am *AssetManager) LoadFont() (*common.Font, error) {
	if am.font != nil {
		return am.font, nil
	}
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	font := &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: hudFontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("failed to prepare HUD font: %w", err)
	}
	am.font = font
	return font, nil
}

// Panel returns the translucent backdrop drawn behind the HUD text.
func (am *AssetManager) Panel() common.Drawable {
	if am.panel == nil {
		am.panel = am.convertToEngoTexture(panelImage(hudPanelWidth, hudPanelHeight))
	}
	return am.panel
}

// panelImage draws a translucent rectangle with a one pixel border.
func panelImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	fill := color.RGBA{255, 255, 255, 64}
	border := color.RGBA{255, 255, 255, 160}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.Set(x, y, border)
				continue
			}
			img.Set(x, y, fill)
		}
	}
	return img
}

// convertToEngoTexture converts an RGBA image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.RGBA) common.Drawable {
	bounds := img.Bounds()
	nrgbaImg := image.NewNRGBA(bounds)
	draw.Draw(nrgbaImg, bounds, img, bounds.Min, draw.Src)

	texture := common.NewImageObject(nrgbaImg)
	return common.NewTextureSingle(texture)
}
