package sim

import (
	"testing"

	"stormgrid/internal/terrain"
	"stormgrid/internal/weather"
)

func TestStoreAccessors(t *testing.T) {
	m := terrain.Fill(4, 4, terrain.Forest)
	s := NewStore(NewEventBus(), m, 99, weather.IntensityLow)
	if s.Seed() != 99 {
		t.Errorf("seed %d, want 99", s.Seed())
	}
	if s.Intensity() != weather.IntensityLow {
		t.Errorf("intensity %v, want low", s.Intensity())
	}
	if got, ok := s.Terrain().At(0, 0); !ok || got != terrain.Forest {
		t.Errorf("terrain (0,0) = %v %v", got, ok)
	}
}

func TestStoreTerrainAlwaysEmits(t *testing.T) {
	s := NewStore(NewEventBus(), terrain.Fill(4, 4, terrain.Plain), 1, weather.IntensityHigh)
	fired := 0
	s.OnTerrainChange(func() { fired++ })

	m := terrain.Fill(4, 4, terrain.Plain)
	s.SetTerrain(m, 1)
	s.SetTerrain(m, 1) // regenerate on the same seed still counts
	if fired != 2 {
		t.Fatalf("terrain change fired %d times, want 2", fired)
	}
	if s.Seed() != 1 {
		t.Fatalf("seed %d, want 1", s.Seed())
	}
}

func TestStoreIntensityEmitsOnlyOnChange(t *testing.T) {
	s := NewStore(NewEventBus(), terrain.Fill(4, 4, terrain.Plain), 1, weather.IntensityLow)
	fired := 0
	s.OnIntensityChange(func() { fired++ })

	s.SetIntensity(weather.IntensityLow) // no-op
	s.SetIntensity(weather.IntensityHigh)
	s.SetIntensity(weather.IntensityHigh) // no-op
	s.SetIntensity(weather.IntensityNone)
	if fired != 2 {
		t.Fatalf("intensity change fired %d times, want 2", fired)
	}
	if s.Intensity() != weather.IntensityNone {
		t.Fatalf("intensity %v, want none", s.Intensity())
	}
}

func TestBusFansOutInOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int
	bus.Subscribe(EventIntensityChanged, func(Event) { order = append(order, 1) })
	bus.Subscribe(EventIntensityChanged, func(Event) { order = append(order, 2) })
	bus.Subscribe(EventTerrainChanged, func(Event) { order = append(order, 3) })

	bus.Emit(Event{Type: EventIntensityChanged, Data: 2})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran as %v, want [1 2]", order)
	}
}

func TestBusCarriesPayload(t *testing.T) {
	bus := NewEventBus()
	got := -1
	bus.Subscribe(EventIntensityChanged, func(e Event) { got = e.Data })
	s := NewStore(bus, terrain.Fill(2, 2, terrain.Sea), 5, weather.IntensityNone)
	s.SetIntensity(weather.IntensityHigh)
	if got != int(weather.IntensityHigh) {
		t.Fatalf("payload %d, want %d", got, int(weather.IntensityHigh))
	}
}
