package components

// Kind tags every entity with the variant it belongs to
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindFriendFish
	KindRock
	KindSnail
	KindHeart
	KindHome
)

var kindNames = [...]string{
	KindNone:       "none",
	KindPlayer:     "player",
	KindFriendFish: "fish",
	KindRock:       "rock",
	KindSnail:      "snail",
	KindHeart:      "heart",
	KindHome:       "home",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsFish reports whether the kind carries a FishComponent
func (k Kind) IsFish() bool {
	return k == KindPlayer || k == KindFriendFish
}
