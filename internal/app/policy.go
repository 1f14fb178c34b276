package app

import (
	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
)

// Gate holds the two authorization checks of a room. They stay separate:
// the rank gate decides who may manage queue and playback, the ownership
// gate decides who may move the rank gate itself.
type Gate interface {
	CanManage(room *domain.Room, actor domain.Member) error
	CanChangePermission(room *domain.Room, sid core.SessionID) error
}

type RankGate struct{}

func (RankGate) CanManage(room *domain.Room, actor domain.Member) error {
	if actor.Role.Level() < room.Permission.Level() {
		return domain.ErrNoPermission
	}
	return nil
}

// CanChangePermission ignores rank entirely; only the creating connection passes.
func (RankGate) CanChangePermission(room *domain.Room, sid core.SessionID) error {
	if room.Creator != sid {
		return domain.ErrNotRoomCreator
	}
	return nil
}
