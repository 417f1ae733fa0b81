package engine

import (
	"log"

	"cubular/internal/physics"
)

// BodyID identifies a body for the lifetime of a Scene. IDs are handed out
// in spawn order and never reused until Clear.
type BodyID int

// InvalidBodyID is returned by lookups that find nothing.
const InvalidBodyID BodyID = -1

// Scene owns every body in the simulation. Bodies are only appended between
// frames; the slice returned by Bodies is the spawn-ordered list the physics
// world steps over.
type Scene struct {
	Name   string
	bodies []*physics.Body
	seeded int
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		bodies: make([]*physics.Body, 0),
	}
}

// Spawn takes ownership of b and returns its ID.
func (s *Scene) Spawn(b *physics.Body) BodyID {
	s.bodies = append(s.bodies, b)
	return BodyID(len(s.bodies) - 1)
}

// Get returns the body with the given ID, or nil.
func (s *Scene) Get(id BodyID) *physics.Body {
	if id < 0 || int(id) >= len(s.bodies) {
		return nil
	}
	return s.bodies[id]
}

func (s *Scene) FindByName(name string) (BodyID, bool) {
	for i, b := range s.bodies {
		if b.Name == name {
			return BodyID(i), true
		}
	}
	return InvalidBodyID, false
}

// Bodies returns the scene's bodies in spawn order. Callers must not append to it.
func (s *Scene) Bodies() []*physics.Body {
	return s.bodies
}

func (s *Scene) Len() int {
	return len(s.bodies)
}

// EnabledCount returns how many bodies currently take part in the simulation.
func (s *Scene) EnabledCount() int {
	n := 0
	for _, b := range s.bodies {
		if b.Enabled {
			n++
		}
	}
	return n
}

// MarkSeeded records every body spawned so far as part of the initial scene.
// Reset restores those and disables anything spawned afterwards.
func (s *Scene) MarkSeeded() {
	s.seeded = len(s.bodies)
}

// Seeded returns the number of bodies that belong to the initial scene.
func (s *Scene) Seeded() int {
	return s.seeded
}

// IsSeeded reports whether id belongs to the initial scene.
func (s *Scene) IsSeeded(id BodyID) bool {
	return id >= 0 && int(id) < s.seeded
}

// Reset puts the initial bodies back to their start state and disables the rest.
// Disabled bodies keep their IDs.
func (s *Scene) Reset() {
	for i, b := range s.bodies {
		if i < s.seeded {
			b.Reset()
		} else {
			b.Enabled = false
		}
	}
	log.Printf("Scene: %s reset (%d seeded, %d disabled)", s.Name, s.seeded, len(s.bodies)-s.seeded)
}

// Clear drops every body. Previously issued IDs become invalid.
func (s *Scene) Clear() {
	s.bodies = s.bodies[:0]
	s.seeded = 0
}
