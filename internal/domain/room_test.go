package domain

import "testing"

func TestNewRoom(t *testing.T) {
	room := NewRoom("123456", "teal", Member{SessionID: "a", Name: "calm-teal-otter", Role: RankMember})

	if room.Creator != "a" {
		t.Fatalf("expected creator a, got %q", room.Creator)
	}
	if room.Permission != RankCreator {
		t.Fatalf("expected permission creator, got %q", room.Permission)
	}
	if len(room.Members) != 1 || room.Members[0].Role != RankCreator {
		t.Fatalf("expected a single creator member, got %+v", room.Members)
	}
	if len(room.Queue) != 0 || room.FocusedItem != 0 || room.PlaybackState != StateFinished {
		t.Fatalf("unexpected initial playback: %+v", room)
	}
}

func TestRoomRemoveMemberKeepsOrder(t *testing.T) {
	room := NewRoom("1", "red", Member{SessionID: "a"})
	room.AddMember(NewMember("b", "b"))
	room.AddMember(NewMember("c", "c"))

	removed, ok := room.RemoveMember("b")
	if !ok || removed.SessionID != "b" {
		t.Fatalf("expected to remove b, got %+v %v", removed, ok)
	}
	if len(room.Members) != 2 || room.Members[0].SessionID != "a" || room.Members[1].SessionID != "c" {
		t.Fatalf("unexpected members after remove: %+v", room.Members)
	}
	if _, ok := room.RemoveMember("b"); ok {
		t.Fatal("expected second remove to fail")
	}

	room.RemoveMember("a")
	room.RemoveMember("c")
	if !room.Empty() {
		t.Fatal("expected room to be empty")
	}
}

func TestRoomSnapshotIsDeepCopy(t *testing.T) {
	room := NewRoom("1", "red", Member{SessionID: "a"})
	room.Queue = append(room.Queue, QueueItem{ID: "x", Title: "X"})

	snap := room.Snapshot()
	room.Queue[0].Title = "changed"
	room.AddMember(NewMember("b", "b"))

	if snap.Queue[0].Title != "X" {
		t.Fatalf("snapshot queue changed: %+v", snap.Queue)
	}
	if len(snap.Members) != 1 {
		t.Fatalf("snapshot members changed: %+v", snap.Members)
	}
}

func TestRankLevels(t *testing.T) {
	if RankCreator.Level() <= RankMember.Level() {
		t.Fatal("creator must outrank member")
	}
	if Rank("owner").Valid() || !RankMember.Valid() || !RankCreator.Valid() {
		t.Fatal("unexpected rank validity")
	}
	if PlaybackState("stopped").Valid() || !StatePaused.Valid() {
		t.Fatal("unexpected playback state validity")
	}
}
