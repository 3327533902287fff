package aircraft

import "fmt"

// Sprite is the loaded visual for an aircraft. Front ends supply their own
// implementation; the flight core only carries it for the renderer.
type Sprite interface {
	Width() float32
	Height() float32
}

// AssetLoader resolves asset paths to loaded sprites.
type AssetLoader interface {
	LoadSprite(path string) (Sprite, error)
}

// LoadSprite loads the profile's sprite through loader. Every failure is
// reported as ErrAssetUnavailable.
func LoadSprite(loader AssetLoader, p Profile) (Sprite, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: no asset loader for %s", ErrAssetUnavailable, p.Name)
	}
	sprite, err := loader.LoadSprite(p.SpritePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrAssetUnavailable, p.SpritePath, p.Name, err)
	}
	if sprite == nil {
		return nil, fmt.Errorf("%w: %s (%s): loader returned no sprite", ErrAssetUnavailable, p.SpritePath, p.Name)
	}
	return sprite, nil
}
