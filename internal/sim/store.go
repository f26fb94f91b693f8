package sim

import (
	"stormgrid/internal/terrain"
	"stormgrid/internal/weather"
)

// Store is the single mutation point for world state: the terrain
// matrix, its seed and the weather intensity. Every change fans out
// synchronously over the event bus.
type Store struct {
	bus       *EventBus
	m         terrain.Matrix
	seed      uint64
	intensity weather.Intensity
}

var _ weather.Source = (*Store)(nil)

func NewStore(bus *EventBus, m terrain.Matrix, seed uint64, intensity weather.Intensity) *Store {
	return &Store{bus: bus, m: m, seed: seed, intensity: intensity}
}

func (s *Store) Terrain() terrain.Matrix      { return s.m }
func (s *Store) Seed() uint64                 { return s.seed }
func (s *Store) Intensity() weather.Intensity { return s.intensity }

// SetTerrain swaps the world. It always emits, even for an identical
// matrix: a regenerate on the same seed is still a new world.
func (s *Store) SetTerrain(m terrain.Matrix, seed uint64) {
	s.m = m
	s.seed = seed
	s.bus.Emit(Event{Type: EventTerrainChanged})
}

// SetIntensity emits only when the value actually changes.
func (s *Store) SetIntensity(v weather.Intensity) {
	if v == s.intensity {
		return
	}
	s.intensity = v
	s.bus.Emit(Event{Type: EventIntensityChanged, Data: int(v)})
}

func (s *Store) OnTerrainChange(fn func()) {
	s.bus.Subscribe(EventTerrainChanged, func(Event) { fn() })
}

func (s *Store) OnIntensityChange(fn func()) {
	s.bus.Subscribe(EventIntensityChanged, func(Event) { fn() })
}
