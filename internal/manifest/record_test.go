package manifest

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "integral keeps one decimal", seconds: 2, want: "2.0"},
		{name: "zero", seconds: 0, want: "0.0"},
		{name: "two decimals", seconds: 1.37, want: "1.37"},
		{name: "single decimal", seconds: 0.5, want: "0.5"},
		{name: "missing sentinel", seconds: -1, want: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.seconds); got != tt.want {
				t.Fatalf("formatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestHeaderOrder(t *testing.T) {
	want := []string{
		"ID", "Label", "Duration", "SampleRate", "Path", "Attack",
		"Speaker", "Proportion", "AudioChannel", "AudioEncoding",
		"AudioBitSample", "Language",
	}
	got := Header()
	if len(got) != len(want) {
		t.Fatalf("header has %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}
