package csscolor

import (
	"reflect"
	"testing"
)

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"rgb payload", "rgb(12, 34, 56)", []float64{12, 34, 56}},
		{"percent signs dropped", "hsl(120, 50%, 25.5%)", []float64{120, 50, 25.5}},
		{"space separated", "hwb(90 10% 20%)", []float64{90, 10, 20}},
		{"mixed decimals", "lch(52.23% 72.209 50.46)", []float64{52.23, 72.209, 50.46}},
		{"leading dot", "oklch(.628 .258 29.23)", []float64{0.628, 0.258, 29.23}},
		{"signed values", "lab(50 -23.5 +17)", []float64{50, -23.5, 17}},
		{"no numbers", "rgb()", nil},
		{"plain text", "rebeccapurple", nil},
		{"lone sign ignored", "a-b", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanNumbers(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scanNumbers(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
