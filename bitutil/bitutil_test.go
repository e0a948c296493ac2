package bitutil

import (
	"bytes"
	"testing"
)

func TestXORCyclic(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	b := []byte{0xFF, 0x00}
	got := XOR(a, b)
	want := []byte{0xFE, 0x02, 0xFC, 0x04, 0xFA}
	if !bytes.Equal(got, want) {
		t.Fatalf("XOR = % x, want % x", got, want)
	}
}

func TestXORTwoKeyAlternates(t *testing.T) {
	a := []byte{0x00, 0x00, 0x00, 0x00}
	got := XORTwoKey(a, 0x11, 0x22)
	want := []byte{0x11, 0x22, 0x11, 0x22}
	if !bytes.Equal(got, want) {
		t.Fatalf("XORTwoKey = % x, want % x", got, want)
	}
}

func TestRotate2sInverse(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}
	for lvl := byte(0); lvl <= 7; lvl++ {
		left, err := Rotate2s(data, true, lvl)
		if err != nil {
			t.Fatalf("rotate left lvl=%d: %v", lvl, err)
		}
		back, err := Rotate2s(left, false, lvl)
		if err != nil {
			t.Fatalf("rotate right lvl=%d: %v", lvl, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("lvl=%d: round trip = % x, want % x", lvl, back, data)
		}
	}
}

func TestRotate2sOddLength(t *testing.T) {
	if _, err := Rotate2s([]byte{0x01, 0x02, 0x03}, true, 3); err != ErrOddLength {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
}

func TestRotate2sLevelRange(t *testing.T) {
	if _, err := Rotate2s([]byte{0x01, 0x02}, true, 8); err != ErrLevelRange {
		t.Fatalf("expected ErrLevelRange, got %v", err)
	}
}

func TestRotateAllInverse(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	for lvl := byte(0); lvl <= 7; lvl++ {
		left, err := RotateAll(data, true, lvl)
		if err != nil {
			t.Fatalf("rotateAll left lvl=%d: %v", lvl, err)
		}
		back, err := RotateAll(left, false, lvl)
		if err != nil {
			t.Fatalf("rotateAll right lvl=%d: %v", lvl, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("lvl=%d: round trip = % x, want % x", lvl, back, data)
		}
	}
}

// TestRotateAllE6 exercises the exact example from spec.md's testable
// properties (E6): rotateAll(v, left, 3) then rotateAll(·, right, 3) must
// return the original vector.
func TestRotateAllE6(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	left, err := RotateAll(data, true, 3)
	if err != nil {
		t.Fatal(err)
	}
	back, err := RotateAll(left, false, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("E6 round trip = % x, want % x", back, data)
	}
}

func TestRearrangeInverse(t *testing.T) {
	main := []byte{10, 20, 30, 40, 50}
	table := []byte{4, 0, 3, 1, 2}
	forward := Rearrange(main, table, true)
	back := Rearrange(forward, table, false)
	if !bytes.Equal(back, main) {
		t.Fatalf("rearrange round trip = % v, want % v", back, main)
	}
}
