package app

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dkeye/Roombox/internal/domain"
)

// NameGenerator supplies human-readable slugs and room codes.
type NameGenerator interface {
	RoomName() string
	MemberName() string
	RoomCode(length int) domain.RoomID
}

type FakeNames struct{}

func (FakeNames) RoomName() string {
	return slug(gofakeit.SafeColor())
}

func (FakeNames) MemberName() string {
	return slug(gofakeit.Adjective(), gofakeit.SafeColor(), gofakeit.Animal())
}

// RoomCode draws length random digits; collisions are the caller's problem.
func (FakeNames) RoomCode(length int) domain.RoomID {
	return domain.RoomID(gofakeit.Numerify(strings.Repeat("#", length)))
}

func slug(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Map(slugRune, strings.ToLower(strings.Join(strings.Fields(p), "-")))
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "-")
}

func slugRune(r rune) rune {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
		return r
	}
	return -1
}
