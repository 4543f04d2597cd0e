package models

import "time"

type TimerMode string

const (
	ModePomodoro   TimerMode = "pomodoro"
	ModeShortBreak TimerMode = "short-break"
	ModeLongBreak  TimerMode = "long-break"
)

// ValidTimerMode reports whether m is one of the supported timer modes.
func ValidTimerMode(m TimerMode) bool {
	switch m {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// TimerSession is one completed pomodoro/break interval. The countdown itself
// runs client-side; only finished intervals are logged here.
type TimerSession struct {
	ID              string    `bson:"id" json:"id"`
	Mode            TimerMode `bson:"mode" json:"mode"`
	DurationSeconds int       `bson:"duration_seconds" json:"duration_seconds"`
	CompletedAt     time.Time `bson:"completed_at" json:"completed_at"`
}
