package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/opd-ai/go-merlin/pkg/aircraft"
)

// ImageSprite is a sprite known only by its pixel size. Front ends that do
// not draw bitmaps use it to check that the asset exists.
type ImageSprite struct {
	W, H int
}

// Width implements aircraft.Sprite
func (s ImageSprite) Width() float32 { return float32(s.W) }

// Height implements aircraft.Sprite
func (s ImageSprite) Height() float32 { return float32(s.H) }

// FileLoader is an aircraft.AssetLoader that reads image headers from disk.
type FileLoader struct {
	Root string
}

// LoadSprite implements aircraft.AssetLoader.
func (l FileLoader) LoadSprite(path string) (aircraft.Sprite, error) {
	f, err := os.Open(filepath.Join(l.Root, filepath.FromSlash(path)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ImageSprite{W: cfg.Width, H: cfg.Height}, nil
}
