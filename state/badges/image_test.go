package badges

import "testing"

func TestImageDimensions(t *testing.T) {
	tests := []struct {
		value         string
		width, height int
		ok            bool
	}{
		{"https://example.com/a.png 1024x768", 1024, 768, true},
		{"https://example.com/a.png", 0, 0, false},
		{"https://example.com/a.png 1024", 0, 0, false},
		{"https://example.com/a.png wxh", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		width, height, ok := ImageDimensions(tt.value)
		if width != tt.width || height != tt.height || ok != tt.ok {
			t.Errorf("ImageDimensions(%q) = %d, %d, %v; want %d, %d, %v",
				tt.value, width, height, ok, tt.width, tt.height, tt.ok)
		}
	}
}
