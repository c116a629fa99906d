package colorspace

import "testing"

func TestHexRoundTrip(t *testing.T) {
	tests := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{18, 52, 86},
		{255, 0, 128},
	}

	for _, rgb := range tests {
		hex := rgb.Hex()
		got, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) returned error: %v", hex, err)
		}
		if got != rgb {
			t.Errorf("round trip for %v: hex=%s got=%v", rgb, hex, got)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	if _, err := ParseHex("not-a-colour"); err == nil {
		t.Fatal("expected error for invalid hex string")
	}
}
