package conv

import "testing"

func TestConfigGetInt(t *testing.T) {
	m := map[string]any{"yaml": 3, "json": 4.0, "big": int64(5), "text": "6"}
	tests := []struct {
		key  string
		want int
	}{
		{"yaml", 3},
		{"json", 4},
		{"big", 5},
		{"text", -1},
		{"missing", -1},
	}
	for _, tt := range tests {
		if got := ConfigGetInt(m, tt.key, -1); got != tt.want {
			t.Errorf("ConfigGetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
	if got := ConfigGetInt(nil, "yaml", 7); got != 7 {
		t.Errorf("nil map: got %d", got)
	}
}

func TestConfigGet(t *testing.T) {
	m := map[string]any{"name": "lunch", "n": 2}
	if got := ConfigGet(m, "name", ""); got != "lunch" {
		t.Errorf("ConfigGet(name) = %q", got)
	}
	if got := ConfigGet(m, "n", "fallback"); got != "fallback" {
		t.Errorf("type mismatch should fall back, got %q", got)
	}
	if got := ConfigGet[bool](nil, "x", true); !got {
		t.Error("nil map should fall back")
	}
}
