package dfalex

import "testing"

func TestSpan(t *testing.T) {
	s := Span{67, 73}
	if s.From() != 67 || s.To() != 73 || s.Len() != 6 {
		t.Errorf("unexpected span bounds %v", s)
	}
	if s.String() != "(67…73)" {
		t.Errorf("unexpected span format %q", s.String())
	}
	if empty := (Span{5, 5}); empty.Len() != 0 {
		t.Errorf("expected empty span, have length %d", empty.Len())
	}
}
