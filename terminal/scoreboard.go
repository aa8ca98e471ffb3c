package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Scoreboard receives the values the simulation reports and draws them on
// the top row.
type Scoreboard struct {
	Score int
	Lives int
	Level int
	Ended bool
}

func (s *Scoreboard) ReportScore(score int) { s.Score = score }
func (s *Scoreboard) ReportLives(lives int) { s.Lives = lives }
func (s *Scoreboard) ReportLevel(level int) { s.Level = level }

func (s *Scoreboard) ShowEndScreen(finalScore int) {
	s.Ended = true
	s.Score = finalScore
}

// Draw writes the status line, and the end banner once the run is over.
func (s *Scoreboard) Draw(screen tcell.Screen, paused bool) {
	cols, rows := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	status := fmt.Sprintf("Score: %d  Lives: %d  Level: %d", s.Score, s.Lives, s.Level)
	if paused {
		status += "  [PAUSED]"
	}
	drawText(screen, 0, 0, status, style)

	if !s.Ended {
		return
	}
	banner := fmt.Sprintf("GAME OVER  Final Score: %d", s.Score)
	hint := "r: restart   q: quit"
	drawText(screen, (cols-len(banner))/2, rows/2, banner, style.Foreground(tcell.ColorRed).Bold(true))
	drawText(screen, (cols-len(hint))/2, rows/2+1, hint, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
