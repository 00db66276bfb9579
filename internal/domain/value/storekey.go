package value

import "strings"

// StoreKey is a canonical storefront identifier.
type StoreKey string

const (
	StoreSteam          StoreKey = "steam"
	StoreGamersGate     StoreKey = "gamersgate"
	StoreGreenManGaming StoreKey = "greenmangaming"
	StoreGog            StoreKey = "gog"
	StoreOrigin         StoreKey = "origin"
	StoreHumble         StoreKey = "humble"
	StoreUplay          StoreKey = "uplay"
	StoreFanatical      StoreKey = "fanatical"
	StoreWinGameStore   StoreKey = "wingamestore"
	StoreGameBillet     StoreKey = "gamebillet"
	StoreVoidu          StoreKey = "voidu"
	StoreEpic           StoreKey = "epic"
	StoreGamesplanet    StoreKey = "gamesplanet"
	StoreGamesload      StoreKey = "gamesload"
	StoreTwoGame        StoreKey = "2game"
	StoreIndieGala      StoreKey = "indiegala"
	StoreBlizzard       StoreKey = "blizzard"
	StoreDLGamer        StoreKey = "dlgamer"
	StoreNoctre         StoreKey = "noctre"
	StoreDreamGame      StoreKey = "dreamgame"
)

func (k StoreKey) String() string {
	return string(k)
}

// Upstream numeric store ids, as the catalog reports them.
//
//nolint:gochecknoglobals
var storeKeyByID = map[string]StoreKey{
	"1":  StoreSteam,
	"2":  StoreGamersGate,
	"3":  StoreGreenManGaming,
	"7":  StoreGog,
	"8":  StoreOrigin,
	"11": StoreHumble,
	"13": StoreUplay,
	"15": StoreFanatical,
	"21": StoreWinGameStore,
	"23": StoreGameBillet,
	"24": StoreVoidu,
	"25": StoreEpic,
	"27": StoreGamesplanet,
	"28": StoreGamesload,
	"29": StoreTwoGame,
	"30": StoreIndieGala,
	"31": StoreBlizzard,
	"33": StoreDLGamer,
	"34": StoreNoctre,
	"35": StoreDreamGame,
}

// ParseStoreKey accepts a canonical key string, case-insensitively.
func ParseStoreKey(s string) (StoreKey, bool) {
	key := StoreKey(strings.ToLower(strings.TrimSpace(s)))

	for _, known := range storeKeyByID {
		if key == known {
			return key, true
		}
	}

	return "", false
}

// CanonicalStoreKey resolves an upstream store id to a canonical key. Unmapped
// ids fall back to a substring match on the display name, then to the raw id
// itself so a deal never loses its storefront entirely.
func CanonicalStoreKey(storeID, storeName string) StoreKey {
	if key, ok := storeKeyByID[storeID]; ok {
		return key
	}

	name := strings.ToLower(storeName)

	switch {
	case strings.Contains(name, "steam"):
		return StoreSteam
	case strings.Contains(name, "epic"):
		return StoreEpic
	case strings.Contains(name, "humble"):
		return StoreHumble
	case strings.Contains(name, "gog"):
		return StoreGog
	}

	return StoreKey(storeID)
}
