package njdset

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func tokenizeMoraHelper(s string) ([]mora.Mora, bool) {
	if s == "" {
		return nil, true
	}
	return mora.Tokenize(s)
}

func kazuPOS() pos.POS {
	return pos.POS{Category: pos.Meishi, Meishi: pos.MeishiKazu}
}

func nonKazuPOS() pos.POS {
	return pos.POS{Category: pos.Meishi, Meishi: pos.MeishiGeneral}
}
