package vocal

import (
	"math"
	"testing"
)

func sineBlock(bin int, amplitude float64, n int) []int16 {
	block := make([]int16, n)
	for i := range block {
		v := amplitude * math.Sin(2*math.Pi*float64(bin)*float64(i)/float64(n))
		block[i] = int16(v * 32767)
	}
	return block
}

func TestStrongestBin(t *testing.T) {
	n := 1024
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 50 * float64(i) / float64(n))
	}

	if got := strongestBin(samples); got != 50 {
		t.Errorf("strongestBin = %d, want 50", got)
	}
	if got, want := pitchOf(samples), 50.0/512.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("pitchOf = %v, want %v", got, want)
	}
}

func TestProcessEmitsEveryWindow(t *testing.T) {
	a := NewAnalyzer()
	block := sineBlock(50, 0.5, 1024)

	for i := 0; i < WindowBlocks-1; i++ {
		if _, ok := a.Process(block); ok {
			t.Fatalf("unexpected emission at block %d", i+1)
		}
	}
	if _, ok := a.Process(block); !ok {
		t.Fatal("expected emission at window boundary")
	}

	// Next window emits again after another WindowBlocks
	for i := 0; i < WindowBlocks-1; i++ {
		if _, ok := a.Process(block); ok {
			t.Fatalf("unexpected emission at block %d of second window", i+1)
		}
	}
	if _, ok := a.Process(block); !ok {
		t.Fatal("expected emission at second window boundary")
	}
}

func TestAggregateSteadyTone(t *testing.T) {
	a := NewAnalyzer()
	block := sineBlock(50, 0.5, 1024)

	var got struct {
		ok bool
		f  struct{ pitch, pitchVar, volume, rate, stress float64 }
	}
	for i := 0; i < WindowBlocks; i++ {
		if f, ok := a.Process(block); ok {
			got.ok = true
			got.f.pitch = f.Pitch
			got.f.pitchVar = f.PitchVariation
			got.f.volume = f.Volume
			got.f.rate = f.SpeakingRate
			got.f.stress = f.Stress
		}
	}
	if !got.ok {
		t.Fatal("expected one emission")
	}

	// 50/512 rounds to 0.1; a steady tone has zero pitch variation
	if got.f.pitch != 0.1 {
		t.Errorf("pitch = %v, want 0.1", got.f.pitch)
	}
	if got.f.pitchVar != 0 {
		t.Errorf("pitchVariation = %v, want 0", got.f.pitchVar)
	}
	// RMS of a half-amplitude sine times gain 4 clamps to 1
	if got.f.volume != 1.0 {
		t.Errorf("volume = %v, want 1.0", got.f.volume)
	}
	if got.f.rate != 1.0 {
		t.Errorf("speakingRate = %v, want 1.0", got.f.rate)
	}
	// 0.3*avgPitch + 0.4*0 + 0.3*(1-1)
	if want := math.Round(0.3*(50.0/512.0)*100) / 100; got.f.stress != want {
		t.Errorf("stress = %v, want %v", got.f.stress, want)
	}
}

func TestSilentBlocksLowerSpeakingRate(t *testing.T) {
	a := NewAnalyzer()
	loud := sineBlock(50, 0.5, 1024)
	quiet := make([]int16, 1024)

	var rate float64
	emitted := false
	for i := 0; i < WindowBlocks; i++ {
		block := loud
		if i < 5 {
			block = quiet
		}
		if f, ok := a.Process(block); ok {
			rate = f.SpeakingRate
			emitted = true
		}
	}
	if !emitted {
		t.Fatal("expected one emission")
	}
	if want := math.Round((1-5.0/15.0)*100) / 100; rate != want {
		t.Errorf("speakingRate = %v, want %v", rate, want)
	}
}

func TestRollingBufferBound(t *testing.T) {
	a := NewAnalyzer()
	block := sineBlock(50, 0.5, 1024)
	for i := 0; i < BufferBlocks+15; i++ {
		a.Process(block)
	}
	if len(a.pitches) != BufferBlocks {
		t.Errorf("pitch buffer length = %d, want %d", len(a.pitches), BufferBlocks)
	}
	if len(a.volumes) != BufferBlocks {
		t.Errorf("volume buffer length = %d, want %d", len(a.volumes), BufferBlocks)
	}
}

func TestResetClearsState(t *testing.T) {
	a := NewAnalyzer()
	block := sineBlock(50, 0.5, 1024)
	for i := 0; i < 5; i++ {
		a.Process(block)
	}
	a.Reset()
	if a.blocks != 0 || a.pitches != nil || a.volumes != nil {
		t.Error("Reset should clear all rolling state")
	}
}
