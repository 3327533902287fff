package aircraft

import (
	"fmt"
	"strings"
	"time"
)

// Variant identifies an aircraft type in the catalog
type Variant int

const (
	F16 Variant = iota
	GripenE
	X47B
)

// String returns the variant's tag.
func (v Variant) String() string {
	switch v {
	case F16:
		return "F-16"
	case GripenE:
		return "Gripen-E"
	case X47B:
		return "X-47B"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Variants lists every catalogued variant, including those without a
// populated profile.
func Variants() []Variant {
	return []Variant{F16, GripenE, X47B}
}

// ParseVariant converts a tag such as "F-16", "f16" or "Gripen-E" to a
// Variant. Matching ignores case and hyphens.
func ParseVariant(tag string) (Variant, error) {
	switch normalizeTag(tag) {
	case "f16":
		return F16, nil
	case "gripene", "gripen":
		return GripenE, nil
	case "x47b":
		return X47B, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, tag)
	}
}

func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(tag)
}

// Resolve returns the profile for a variant. Variants that are catalogued
// but not yet populated fail with ErrUnsupportedVariant.
func Resolve(v Variant) (Profile, error) {
	switch v {
	case F16:
		return f16Profile(), nil
	case GripenE:
		return gripenProfile(), nil
	default:
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupportedVariant, v)
	}
}

// ResolveTag parses tag and resolves its profile.
func ResolveTag(tag string) (Profile, error) {
	v, err := ParseVariant(tag)
	if err != nil {
		return Profile{}, err
	}
	return Resolve(v)
}

// fighterCurve is the shared military-power schedule; only the overboost
// point at 110% differs between airframes.
func fighterCurve(overboost uint32) *ThrustCurve {
	c := NewThrustCurve()
	c.AddPoint(0, 0)
	c.AddPoint(25, 500)
	c.AddPoint(50, 1500)
	c.AddPoint(75, 3000)
	c.AddPoint(85, 4000)
	c.AddPoint(90, 4800)
	c.AddPoint(100, 5000)
	c.AddPoint(110, overboost)
	return c
}

func f16Profile() Profile {
	return Profile{
		Variant:   F16,
		Name:      "F-16",
		MaxHealth: 100,

		BaseTurnRate:  0.04,
		TurnFlipPoint: 100,
		MaxTurnRate:   0.06,
		MinTurnRate:   0.025,

		StallSpeed: 50,

		DragBase:     0.02,
		TurnDrag:     1.2,
		AirbrakeDrag: 0.06,

		ReferenceArea:    30,
		Mass:             8000,
		ThrustMultiplier: 4.9090909,

		BulletFireRate: 10 * time.Millisecond,

		SpritePath: "sprites/aircraft/f16_level.png",

		curve: fighterCurve(6000),
	}
}

func gripenProfile() Profile {
	return Profile{
		Variant:   GripenE,
		Name:      "Gripen",
		MaxHealth: 100,

		BaseTurnRate:  0.04,
		TurnFlipPoint: 100,
		MaxTurnRate:   0.06,
		MinTurnRate:   0.025,

		StallSpeed: 50,

		DragBase:     0.02,
		TurnDrag:     1.2,
		AirbrakeDrag: 0.06,

		ReferenceArea:    30,
		Mass:             8000,
		ThrustMultiplier: 4.9090909,

		BulletFireRate: 10 * time.Millisecond,

		SpritePath: "sprites/aircraft/gripen_level.png",

		curve: fighterCurve(5500),
	}
}
