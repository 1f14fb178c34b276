package domain

type PlaybackState string

const (
	StateLoading  PlaybackState = "loading"
	StatePlaying  PlaybackState = "playing"
	StatePaused   PlaybackState = "paused"
	StateFinished PlaybackState = "finished"
)

func (s PlaybackState) Valid() bool {
	switch s {
	case StateLoading, StatePlaying, StatePaused, StateFinished:
		return true
	}
	return false
}
