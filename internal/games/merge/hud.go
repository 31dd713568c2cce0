package merge

import "fmt"

// labels is the text shown around the board. It implements HUD.
type labels struct {
	score     string
	gameOver  string
	showRetry bool
}

func newLabels() *labels {
	l := &labels{}
	l.Reset()
	return l
}

func (l *labels) ScoreChanged(score int) {
	l.score = fmt.Sprintf("score: %d", score)
}

func (l *labels) GameOver(score int) {
	l.gameOver = fmt.Sprintf("GAMEOVER score: %d", score)
	l.showRetry = true
}

func (l *labels) Reset() {
	l.score = "score: 0"
	l.gameOver = ""
	l.showRetry = false
}
