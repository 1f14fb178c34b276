package app

import (
	"regexp"
	"testing"
)

func TestFakeNames(t *testing.T) {
	names := FakeNames{}
	slugRe := regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	codeRe := regexp.MustCompile(`^[0-9]{6}$`)

	for i := 0; i < 50; i++ {
		if n := names.RoomName(); !slugRe.MatchString(n) {
			t.Fatalf("room name %q is not a slug", n)
		}
		if n := names.MemberName(); !slugRe.MatchString(n) {
			t.Fatalf("member name %q is not a slug", n)
		}
		if c := names.RoomCode(DefaultRoomCodeLength); !codeRe.MatchString(string(c)) {
			t.Fatalf("room code %q is not six digits", c)
		}
	}
}

func TestSlug(t *testing.T) {
	if got := slug("Navy Blue", "", "Red", "O'Brien"); got != "navy-blue-red-obrien" {
		t.Fatalf("slug() = %q", got)
	}
}
