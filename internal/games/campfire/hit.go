package campfire

import (
	"fmt"

	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/core"
)

// Object is something in the scene the player can click.
type Object string

const (
	ObjectFire  Object = "fire"
	ObjectMan1  Object = "man1"
	ObjectMan2  Object = "man2"
	ObjectGirl1 Object = "girl1"
	ObjectGirl2 Object = "girl2"
	ObjectOwl   Object = "owl"
)

// SoundGroup returns the sound group played when the object is clicked.
func (o Object) SoundGroup() string {
	switch o {
	case ObjectFire:
		return "firewood"
	case ObjectMan2:
		return "guitar"
	default:
		return string(o)
	}
}

func knownObject(o Object) bool {
	switch o {
	case ObjectFire, ObjectMan1, ObjectMan2, ObjectGirl1, ObjectGirl2, ObjectOwl:
		return true
	}
	return false
}

// Region is a clickable scene rectangle.
type Region struct {
	Object Object
	Bounds core.Bounds
}

// HitMap is an ordered list of regions; the first match wins.
type HitMap []Region

// NewHitMap builds a hit map from configured regions.
func NewHitMap(regions []config.RegionConfig) (HitMap, error) {
	hits := make(HitMap, 0, len(regions))
	for i, r := range regions {
		obj := Object(r.Object)
		if !knownObject(obj) {
			return nil, fmt.Errorf("campfire: region %d: unknown object %q", i, r.Object)
		}
		if len(r.Bounds) != 4 {
			return nil, fmt.Errorf("campfire: region %d: bounds need 4 values", i)
		}

		b := core.Bounds{Left: r.Bounds[0], Top: r.Bounds[1], Right: r.Bounds[2], Bottom: r.Bounds[3]}
		if !b.Valid() {
			return nil, fmt.Errorf("campfire: region %d: inverted bounds %v", i, r.Bounds)
		}
		hits = append(hits, Region{Object: obj, Bounds: b})
	}
	return hits, nil
}

// At returns the object under p.
func (h HitMap) At(p core.Point) (Object, bool) {
	for _, r := range h {
		if r.Bounds.Contains(p) {
			return r.Object, true
		}
	}
	return "", false
}
