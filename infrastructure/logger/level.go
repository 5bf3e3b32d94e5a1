package logger

import "strings"

// Level is the minimum severity a logger or a log writer lets through.
type Level uint32

// Level constants, in increasing severity.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

// levelTags are the three letter tags written in log lines.
var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// levelNames maps the accepted spellings of --debuglevel values to levels.
var levelNames = map[string]Level{
	"trace":    LevelTrace,
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"error":    LevelError,
	"critical": LevelCritical,
	"off":      LevelOff,
}

func init() {
	for level, tag := range levelTags {
		levelNames[strings.ToLower(tag)] = Level(level)
	}
}

// LevelFromString returns the level named by s, either by its full name or
// by its tag, case insensitively. Unknown names return LevelInfo and false.
func LevelFromString(s string) (l Level, ok bool) {
	level, ok := levelNames[strings.ToLower(s)]
	if !ok {
		return LevelInfo, false
	}
	return level, true
}

// String returns the tag written in log lines for l.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelTags[l]
}
