package core

import (
	"testing"
)

func TestColor_IsSet(t *testing.T) {
	if NoColor.IsSet() {
		t.Error("NoColor must not be set")
	}
	if !Yellow.IsSet() {
		t.Error("Yellow must be set")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"", NoColor, false},
		{"none", NoColor, false},
		{"Yellow", Yellow, false},
		{"grey", Gray, false},
		{"brightcyan", BrightCyan, false},
		{"chartreuse", NoColor, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBatch_Text(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"multi", []string{"a", "b", "c"}, "a\nb\nc"},
		{"blank line", []string{"a", "", "b"}, "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Batch
			for _, l := range tt.lines {
				b.Lines = append(b.Lines, Line{Message: l})
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Batch.Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleBatch(t *testing.T) {
	it := NewItem("hello", WarningLevel, Red)
	b := SingleBatch(it)
	if b.Level != WarningLevel || b.Color != Red {
		t.Errorf("SingleBatch() = %+v, want level WARNING color red", b)
	}
	if len(b.Lines) != 1 || b.Lines[0].Message != "hello" {
		t.Errorf("SingleBatch() lines = %+v", b.Lines)
	}
	if it.Time.IsZero() {
		t.Error("NewItem() should stamp a time")
	}
}
