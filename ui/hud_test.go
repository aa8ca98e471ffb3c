package ui

import "testing"

func TestHUD_Reports(t *testing.T) {
	var ended []int
	h := &HUD{OnEnd: func(s int) { ended = append(ended, s) }}

	h.ReportScore(120)
	h.ReportLives(2)
	h.ReportLevel(3)
	h.ShowEndScreen(120)

	if h.Score != 120 || h.Lives != 2 || h.Level != 3 {
		t.Fatalf("expected 120/2/3, got %d/%d/%d", h.Score, h.Lives, h.Level)
	}
	if len(ended) != 1 || ended[0] != 120 {
		t.Fatalf("expected end callback with 120, got %v", ended)
	}
}
