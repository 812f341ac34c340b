// Package sequencer owns playback position over a scene script and advances it
// on a per-scene timer.
package sequencer

import (
	"log"
	"sync"
	"time"

	"github.com/matt-g-everett/lifecompass/clock"
	"github.com/matt-g-everett/lifecompass/scene"
)

// State is the playback state of a Sequencer.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent, read-only copy of sequencer state.
type Snapshot struct {
	State        State
	Index        int
	Scene        *scene.Descriptor
	Progress     float64
	SceneStarted time.Time
	Version      uint64
}

// Playing reports whether the snapshot was taken mid-sequence.
func (s Snapshot) Playing() bool {
	return s.State == Playing
}

// Sequencer steps through a scene list, one timer per scene.
type Sequencer struct {
	scenes scene.List
	clock  clock.Clock

	mu           sync.Mutex
	index        int
	playing      bool
	closed       bool
	epoch        uint64
	version      uint64
	sceneStarted time.Time
	timer        clock.Timer
	observers    []func(Snapshot)
}

// New creates an idle Sequencer over scenes.
func New(scenes scene.List, c clock.Clock) *Sequencer {
	s := new(Sequencer)
	s.scenes = scenes
	s.clock = c
	return s
}

// Scenes returns the script the sequencer plays.
func (s *Sequencer) Scenes() scene.List {
	return s.scenes
}

// OnChange registers f to be called after every state change. Calls happen
// outside the sequencer lock, so f may query the Sequencer; use
// Snapshot.Version to discard out-of-order deliveries.
func (s *Sequencer) OnChange(f func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, f)
}

// Start begins playback at the first scene. Calling Start while playing
// restarts from the first scene.
func (s *Sequencer) Start() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		log.Println("Start ignored, sequencer closed")
		return
	}

	s.cancelLocked()
	s.index = 0
	s.playing = true
	s.enterSceneLocked()
	snap, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	log.Printf("Sequence started, scene %d", snap.Scene.ID)
	notify(observers, snap)
}

// Reset returns to idle, discarding any pending timer. Reset while idle is a
// no-op.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}

	s.cancelLocked()
	s.toIdleLocked()
	snap, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	log.Println("Sequence reset")
	notify(observers, snap)
}

// Close cancels playback permanently; later Start calls are ignored.
func (s *Sequencer) Close() {
	s.mu.Lock()
	s.closed = true
	wasPlaying := s.playing
	s.cancelLocked()
	if wasPlaying {
		s.toIdleLocked()
	}
	snap, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	if wasPlaying {
		notify(observers, snap)
	}
}

// ActiveScene returns the current scene while playing.
func (s *Sequencer) ActiveScene() (scene.Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playing {
		return scene.Descriptor{}, false
	}
	return s.scenes.At(s.index), true
}

// ProgressFraction returns (index+1)/N while playing and 0 when idle.
func (s *Sequencer) ProgressFraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Snapshot returns a consistent copy of the current state.
func (s *Sequencer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Sequencer) enterSceneLocked() {
	s.epoch++
	s.version++
	s.sceneStarted = s.clock.Now()

	epoch, index := s.epoch, s.index
	s.timer = s.clock.AfterFunc(s.scenes.At(index).Duration(), func() {
		s.advance(epoch, index)
	})
}

// advance runs when the timer for (epoch, index) fires. A timer superseded by
// a reset, restart or earlier advance finds a different epoch and does nothing.
func (s *Sequencer) advance(epoch uint64, index int) {
	s.mu.Lock()
	if !s.playing || s.epoch != epoch || s.index != index {
		s.mu.Unlock()
		return
	}

	s.timer = nil
	complete := index+1 >= s.scenes.Len()
	if complete {
		s.toIdleLocked()
	} else {
		s.index++
		s.enterSceneLocked()
	}
	snap, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	if complete {
		log.Println("Sequence complete")
	} else {
		log.Printf("Scene %d", snap.Scene.ID)
	}
	notify(observers, snap)
}

func (s *Sequencer) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.epoch++
}

func (s *Sequencer) toIdleLocked() {
	s.playing = false
	s.index = 0
	s.epoch++
	s.version++
	s.sceneStarted = s.clock.Now()
}

func (s *Sequencer) progressLocked() float64 {
	if !s.playing {
		return 0
	}
	return float64(s.index+1) / float64(s.scenes.Len())
}

func (s *Sequencer) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:        Idle,
		Index:        s.index,
		Progress:     s.progressLocked(),
		SceneStarted: s.sceneStarted,
		Version:      s.version,
	}
	if s.playing {
		d := s.scenes.At(s.index)
		snap.State = Playing
		snap.Scene = &d
	}
	return snap
}

func (s *Sequencer) observersLocked() []func(Snapshot) {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]func(Snapshot), len(s.observers))
	copy(out, s.observers)
	return out
}

func notify(observers []func(Snapshot), snap Snapshot) {
	for _, f := range observers {
		f(snap)
	}
}
