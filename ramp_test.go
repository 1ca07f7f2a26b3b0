package hueseek

import "testing"

func TestHueRamp(t *testing.T) {
	ramp := HueRamp()
	if len(ramp) != 15 {
		t.Fatalf("len(HueRamp()) = %d, want 15", len(ramp))
	}
	if ramp[0].Color != 0xFFFF0000 || ramp[0].Position != 0 {
		t.Errorf("first stop = %+v, want red at 0", ramp[0])
	}
	if ramp[12].Color != 0xFFFF0000 {
		t.Errorf("stop 12 color = %v, want red", ramp[12].Color)
	}
	if ramp[12].Position != float32(0.5)*float32(0.084)*12 {
		t.Errorf("stop 12 position = %v", ramp[12].Position)
	}
	if ramp[13].Position != 0.5 || ramp[14].Position != 1 {
		t.Errorf("tail positions = %v, %v; want 0.5, 1", ramp[13].Position, ramp[14].Position)
	}
	for _, s := range ramp[13:] {
		if s.Color != Transparent {
			t.Errorf("tail stop color = %v, want transparent", s.Color)
		}
	}
	for i := 1; i <= 12; i++ {
		if ramp[i].Position <= ramp[i-1].Position {
			t.Errorf("stop %d position %v not increasing", i, ramp[i].Position)
		}
	}
}

func TestHueRamp_ReturnsCopy(t *testing.T) {
	a := HueRamp()
	a[0].Color = Black
	if HueRamp()[0].Color != 0xFFFF0000 {
		t.Error("mutating the returned ramp changed the table")
	}
}
