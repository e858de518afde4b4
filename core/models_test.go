package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plain content",
			content: "South of France - Cities.pdf",
		},
		{
			name:    "empty content",
			content: "",
		},
		{
			name:    "long content",
			content: "A considerably longer piece of content that should still hash consistently every time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent([]byte(tt.content))
			id2 := IDFromContent([]byte(tt.content))

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent([]byte("content1"))
	id2 := IDFromContent([]byte("content2"))

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestRect_Union(t *testing.T) {
	a := Rect{X0: 10, Y0: 700, X1: 100, Y1: 712}
	b := Rect{X0: 95, Y0: 698, X1: 220, Y1: 710}

	got := a.Union(b)
	want := Rect{X0: 10, Y0: 698, X1: 220, Y1: 712}

	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X0: 0, Y0: 100, X1: 200, Y1: 120}

	if got := r.CenterX(); got != 100 {
		t.Errorf("CenterX() = %f, want 100", got)
	}
	if got := r.CenterY(); got != 110 {
		t.Errorf("CenterY() = %f, want 110", got)
	}
}

func TestNormalizePersona(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{
			name: "mixed case",
			role: "Travel Planner",
			want: "travel planner",
		},
		{
			name: "surrounding whitespace",
			role: "  Food Contractor ",
			want: "food contractor",
		},
		{
			name: "already normalized",
			role: "hr professional",
			want: "hr professional",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePersona(tt.role); got != tt.want {
				t.Errorf("NormalizePersona(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}
