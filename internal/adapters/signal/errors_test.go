package signal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dkeye/Roombox/internal/domain"
)

func TestErrorEvent(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrAlreadyInRoom, "error:already_in_room"},
		{domain.ErrRoomNotFound, "error:invalid_room_code"},
		{domain.ErrNotInRoom, "error:not_in_a_room"},
		{domain.ErrNoPermission, "error:no_permission_to_manage"},
		{domain.ErrNotRoomCreator, "error:not_room_creator"},
		{fmt.Errorf("%w: title missing", domain.ErrInvalidAddition), "error:invalid_addition"},
		{domain.ErrInvalidItem, "error:invalid_item"},
		{fmt.Errorf("%w: bad index", domain.ErrInvalidItem), "error:invalid_item"},
		{domain.ErrRoomCodesExhausted, "error:no_free_room_code"},
		{ErrBadPayload, "error:bad_payload"},
		{errors.New("boom"), "error:internal"},
	}
	for _, tt := range tests {
		if got := errorEvent(tt.err); got != tt.want {
			t.Fatalf("errorEvent(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestMetricKind(t *testing.T) {
	if got := metricKind(ReqPlaySong); got != ReqPlaySong {
		t.Fatalf("metricKind(%q) = %q", ReqPlaySong, got)
	}
	if got := metricKind("anything-a-client-sends"); got != "unknown" {
		t.Fatalf("unknown type leaked into labels: %q", got)
	}
}
