package physics

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes a pair of bodies that overlapped during a step.
type Contact struct {
	A, B   *Body
	Normal rl.Vector3 // points from B towards A
}

// Stats summarizes the last Step.
type Stats struct {
	Bodies     int
	Candidates int
	Contacts   int
	TreeDepth  int
}

// World runs the per-frame pipeline over a body list it does not own:
// boxes, tree, candidate pairs, SAT, resolution, contact callbacks, attraction, integration.
type World struct {
	Settings Settings

	// OnContactEnter fires once when a pair starts touching, OnContactExit when it stops.
	OnContactEnter func(Contact)
	OnContactExit  func(Contact)

	tree *Tree

	// Collision tracking for callbacks
	activeContacts  map[bodyPair]Contact // contacts from last frame
	currentContacts map[bodyPair]Contact // contacts this frame

	stats           Stats
	lastLoggedCount int
}

// bodyPair keys contacts by identity so they survive index shifts between frames.
type bodyPair struct {
	a, b *Body
}

func NewWorld(s Settings) *World {
	return &World{
		Settings:        s,
		tree:            NewTree(s),
		activeContacts:  make(map[bodyPair]Contact),
		currentContacts: make(map[bodyPair]Contact),
	}
}

// Step advances every body by dt. Bodies may be appended between steps, never during one.
func (w *World) Step(bodies []*Body, dt float32) {
	w.currentContacts = make(map[bodyPair]Contact)
	w.logBodyCount(len(bodies))

	// 1. Fresh boxes from current positions
	for _, b := range bodies {
		if b.Enabled {
			b.UpdateBox()
		}
	}

	// 2. Broad phase
	w.tree.Rebuild(bodies)
	pairs := w.tree.CandidatePairs()

	// 3. Narrow phase and response
	for _, p := range pairs {
		a, b := bodies[p.A], bodies[p.B]
		if !Overlap(a.Box, b.Box) {
			continue
		}
		normal, ok := Resolve(a, b, w.Settings)
		if !ok {
			continue
		}
		w.currentContacts[bodyPair{a, b}] = Contact{A: a, B: b, Normal: normal}
	}

	w.stats = Stats{
		Bodies:     w.tree.Len(),
		Candidates: len(pairs),
		Contacts:   len(w.currentContacts),
		TreeDepth:  w.tree.Depth(),
	}
	w.tree.Reset()

	// 4. Enter/exit callbacks
	w.dispatchContactCallbacks()

	// 5. Forces, then integration
	AccumulateAttraction(bodies, w.Settings)
	for _, b := range bodies {
		b.Integrate(dt, w.Settings)
	}
}

// Stats returns counters from the last Step.
func (w *World) Stats() Stats {
	return w.stats
}

// ActiveContacts returns how many pairs were touching at the end of the last Step.
func (w *World) ActiveContacts() int {
	return len(w.activeContacts)
}

// ClearContacts forgets tracked contacts without firing exit callbacks. Used on scene reset.
func (w *World) ClearContacts() {
	w.activeContacts = make(map[bodyPair]Contact)
	w.currentContacts = make(map[bodyPair]Contact)
}

func (w *World) dispatchContactCallbacks() {
	// Find new contacts (enter)
	for key, c := range w.currentContacts {
		if _, seen := w.activeContacts[key]; !seen && w.OnContactEnter != nil {
			w.OnContactEnter(c)
		}
	}

	// Find ended contacts (exit)
	for key, c := range w.activeContacts {
		if _, still := w.currentContacts[key]; !still && w.OnContactExit != nil {
			w.OnContactExit(c)
		}
	}

	// Swap buffers
	w.activeContacts = w.currentContacts
}

func (w *World) logBodyCount(n int) {
	if n == 0 || n%50 != 0 || n == w.lastLoggedCount {
		return
	}
	w.lastLoggedCount = n
	log.Printf("Physics: %d bodies", n)
}
