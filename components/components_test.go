package components

import (
	"testing"

	"github.com/lixenwraith/fishgrid/constants"
)

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want PositionComponent
	}{
		{"Up", DirUp, PositionComponent{X: 5, Y: 4}},
		{"Down", DirDown, PositionComponent{X: 5, Y: 6}},
		{"Left", DirLeft, PositionComponent{X: 4, Y: 5}},
		{"Right", DirRight, PositionComponent{X: 6, Y: 5}},
		{"None", DirNone, PositionComponent{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionComponent{X: 5, Y: 5}.Add(tt.dir)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPlayer, "player"},
		{KindFriendFish, "fish"},
		{KindRock, "rock"},
		{KindSnail, "snail"},
		{KindHeart, "heart"},
		{KindHome, "home"},
		{Kind(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}

	if !KindFriendFish.IsFish() || !KindPlayer.IsFish() {
		t.Error("Expected player and friend fish to be fish kinds")
	}
	if KindHeart.IsFish() {
		t.Error("Heart must not be a fish kind")
	}
}

func TestPlayerFamily(t *testing.T) {
	for color := 0; color < constants.FishColorCount; color++ {
		want := color == constants.PlayerColor || color == constants.ComplementColor
		if got := PlayerFamily(color); got != want {
			t.Errorf("PlayerFamily(%d) = %v, want %v", color, got, want)
		}
	}
	if ColorName(constants.ComplementColor) != "magenta" {
		t.Errorf("Expected complement color to be magenta, got %s", ColorName(constants.ComplementColor))
	}
	if ColorName(-1) != "unknown" {
		t.Error("Expected unknown for out of range color")
	}
}

func TestTrailPush(t *testing.T) {
	trail := TrailComponent{Limit: 3}
	for i := 0; i < 5; i++ {
		trail.Push(PositionComponent{X: i})
	}

	if len(trail.Positions) != 3 {
		t.Fatalf("Expected trail capped at 3, got %d", len(trail.Positions))
	}
	for i, want := range []int{4, 3, 2} {
		p, ok := trail.At(i)
		if !ok || p.X != want {
			t.Errorf("At(%d) = %+v, %v; want X=%d", i, p, ok, want)
		}
	}
	if _, ok := trail.At(3); ok {
		t.Error("Expected At beyond trail length to fail")
	}
}
