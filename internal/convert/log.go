package convert

import (
	"fmt"
	"io"
)

// Log prints verbose progress for a conversion run. A nil *Log is silent.
type Log struct {
	w     io.Writer
	emoji bool
}

// NewLog returns a Log writing to w. emoji selects pictographic status
// markers; plain ASCII markers are used otherwise.
func NewLog(w io.Writer, emoji bool) *Log {
	return &Log{w: w, emoji: emoji}
}

type marker int

const (
	markTitle marker = iota
	markOK
	markWarn
	markWork
	markSizes
	markStats
	markDone
)

var (
	emojiMarks = [...]string{"🖼️ ", "✅", "⚠️ ", "🔄", "📏", "📊", "🎉"}
	asciiMarks = [...]string{"==", "[ok]", "[skip]", "..", "--", "--", "[done]"}
)

func (l *Log) printf(m marker, format string, args ...any) {
	if l == nil {
		return
	}
	mark := asciiMarks[m]
	if l.emoji {
		mark = emojiMarks[m]
	}
	fmt.Fprintf(l.w, mark+" "+format+"\n", args...)
}

// plain prints a line with no marker.
func (l *Log) plain(format string, args ...any) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}
