package models

// Favorites capacity: every account starts with BaseFavs slots and each
// unexpired capacity grant adds FavsPerGrant more. Num is recomputed from
// the grant stack on every read, never trusted as stored.
const (
	BaseFavs     = 5
	FavsPerGrant = 3
)

// CapacityGrant is a temporary favorites-capacity boost with an expiration
// timestamp (ms since epoch).
type CapacityGrant struct {
	Expiration int64 `json:"expiration"`
	NewMaxFav  int   `json:"newMaxFav"`
}

type MaxFavs struct {
	Num             int             `json:"num"`
	ExpirationStack []CapacityGrant `json:"expirationStack"`
}

type Favorite struct {
	DestID  string `json:"destId"`
	ParkID  string `json:"parkId"`
	ID      string `json:"id"`
	Added   int64  `json:"added"`
	Expires *int64 `json:"expires"`
}

type UserRecord struct {
	UID       string     `json:"uid"`
	MaxFavs   MaxFavs    `json:"maxFavs"`
	Favs      []Favorite `json:"favs"`
	MaxNotifs MaxFavs    `json:"maxNotifs"`
	Notifs    []Favorite `json:"notifs"`
}

// NewUserRecord returns the default record created at registration.
func NewUserRecord(uid string) *UserRecord {
	return &UserRecord{
		UID:       uid,
		MaxFavs:   MaxFavs{Num: BaseFavs, ExpirationStack: []CapacityGrant{}},
		Favs:      []Favorite{},
		MaxNotifs: MaxFavs{Num: BaseFavs, ExpirationStack: []CapacityGrant{}},
		Notifs:    []Favorite{},
	}
}
