// Package object holds the game's entities: falling meteors, particle sparks,
// floating labels and menu buttons.
package object

import (
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/loop/config"
)

// Spawner allows the game loop's entity collections to receive new objects.
type Spawner interface {
	Spawn(obj Object)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface draw.Surface
	Offset  draw.Point     // Screen-shake offset added to shaken positions
	Palette config.Palette // Colours for objects without their own
}

// Object is a drawable and updatable game entity. The set of implementations
// is closed: *Meteor, *Particle and *FloatingText.
type Object interface {
	// Update advances the object by one frame. Returns true if the object should be removed.
	Update() (remove bool)

	// Draw draws the object, shifted by ctx.Offset.
	Draw(ctx DrawContext)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// UpdateAll advances every object and returns the survivors, reusing the
// backing array. Removed objects are released to their pools.
func UpdateAll[T Object](objs []T) []T {
	kept := objs[:0]
	for _, obj := range objs {
		if obj.Update() {
			ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(objs[len(kept):])
	return kept
}

// DrawAll draws every object in order.
func DrawAll[T Object](ctx DrawContext, objs []T) {
	for _, obj := range objs {
		obj.Draw(ctx)
	}
}
