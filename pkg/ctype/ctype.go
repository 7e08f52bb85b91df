// Package ctype implements the conjugation-type sum type (spec §3):
// a family enum with a nested row-variant for families that conjugate by
// consonant row.
package ctype

import "fmt"

// Family is the top-level conjugation type.
type Family int

const (
	None Family = iota
	Five        // 五段
	Four        // 四段 (classical)
	One         // 一段
	UpperTwo    // 上二段 (classical)
	LowerTwo    // 下二段 (classical)
	KaIrregular // カ変
	SaIrregular // サ変
	RaIrregular // ラ変
	Keiyoushi   // 形容詞
	Special     // 特殊 (助動詞 conjugation)
	Old         // 文語助動詞
	NoConjugation
)

var familyNames = map[string]Family{
	"五段":   Five,
	"四段":   Four,
	"一段":   One,
	"上二段":  UpperTwo,
	"下二段":  LowerTwo,
	"カ変":   KaIrregular,
	"サ変":   SaIrregular,
	"ラ変":   RaIrregular,
	"形容詞":  Keiyoushi,
	"特殊":   Special,
	"文語助動詞": Old,
	"不変化":  NoConjugation,
	"*":    None,
}

// Gyou is the consonant row a 五段/下二段 verb conjugates along. Spec §9
// calls for "nested sum types at each sublevel"; 五段/下二段 rows are not
// present in the retrieved grounding (only 四段 and 上二段 were), so this
// enumerates the standard modern/classical row set by analogy — see
// DESIGN.md.
type Gyou int

const (
	GyouNone Gyou = iota
	GyouKa
	GyouGa
	GyouSa
	GyouTa
	GyouNa
	GyouBa
	GyouMa
	GyouRa
	GyouWa
	GyouHa
)

var gyouNames = map[string]Gyou{
	"*":   GyouNone,
	"カ行":  GyouKa,
	"ガ行":  GyouGa,
	"サ行":  GyouSa,
	"タ行":  GyouTa,
	"ナ行":  GyouNa,
	"バ行":  GyouBa,
	"マ行":  GyouMa,
	"ラ行":  GyouRa,
	"ワ行":  GyouWa,
	"ハ行":  GyouHa,
	"ワ行促音便": GyouWa,
}

// FourRow is the 四段 row (jpreprocess-core ctype/four.rs).
type FourRow int

const (
	FourKa FourRow = iota
	FourGa
	FourSa
	FourTa
	FourBa
	FourMa
	FourRa
	FourHa
)

var fourRowNames = map[string]FourRow{
	"カ行": FourKa, "ガ行": FourGa, "サ行": FourSa, "タ行": FourTa,
	"バ行": FourBa, "マ行": FourMa, "ラ行": FourRa, "ハ行": FourHa,
}

// UpperTwoRow is the 上二段 row (ctype/upper_two.rs).
type UpperTwoRow int

const (
	UpperTwoDa UpperTwoRow = iota
	UpperTwoHa
)

var upperTwoRowNames = map[string]UpperTwoRow{"ダ行": UpperTwoDa, "ハ行": UpperTwoHa}

// KaIrregularRow distinguishes the kana/kanji spelling of 来る (ctype/ka_irregular.rs).
type KaIrregularRow int

const (
	KaIrregularKatakana KaIrregularRow = iota // クル
	KaIrregularKanji                          // 来ル
)

var kaIrregularRowNames = map[string]KaIrregularRow{"クル": KaIrregularKatakana, "来ル": KaIrregularKanji}

// SaIrregularRow distinguishes スル from its -スル/-ズル conjunctions (ctype/sa_irregular.rs).
type SaIrregularRow int

const (
	SaIrregularAlone SaIrregularRow = iota
	SaIrregularConjugationSuru
	SaIrregularConjugationZuru
)

var saIrregularRowNames = map[string]SaIrregularRow{
	"スル":  SaIrregularAlone,
	"－スル": SaIrregularConjugationSuru,
	"－ズル": SaIrregularConjugationZuru,
	"−スル": SaIrregularConjugationSuru,
	"−ズル": SaIrregularConjugationZuru,
}

// KeiyoushiRow is the 形容詞 inflection row (ctype/keiyoushi.rs).
type KeiyoushiRow int

const (
	KeiyoushiAuo KeiyoushiRow = iota // アウオ段
	KeiyoushiI                       // イ段
	KeiyoushiIi                      // イイ
)

var keiyoushiRowNames = map[string]KeiyoushiRow{"アウオ段": KeiyoushiAuo, "イ段": KeiyoushiI, "イイ": KeiyoushiIi}

// SpecialRow is the 特殊 (auxiliary-verb) row (ctype/special.rs).
type SpecialRow int

const (
	SpecialNai SpecialRow = iota
	SpecialTai
	SpecialTa
	SpecialDa
	SpecialDesu
	SpecialDosu
	SpecialJa
	SpecialMasu
	SpecialNu
	SpecialYa
)

var specialRowNames = map[string]SpecialRow{
	"ナイ": SpecialNai, "タイ": SpecialTai, "タ": SpecialTa, "ダ": SpecialDa,
	"デス": SpecialDesu, "ドス": SpecialDosu, "ジャ": SpecialJa, "マス": SpecialMasu,
	"ヌ": SpecialNu, "ヤ": SpecialYa,
}

// OldRow is the 文語助動詞 row (ctype/old.rs).
type OldRow int

const (
	OldBeshi OldRow = iota
	OldGotoshi
	OldNari
	OldMaji
	OldShimu
	OldKi
	OldKeri
	OldRu
	OldRi
)

var oldRowNames = map[string]OldRow{
	"ベシ": OldBeshi, "ゴトシ": OldGotoshi, "ナリ": OldNari, "マジ": OldMaji,
	"シム": OldShimu, "キ": OldKi, "ケリ": OldKeri, "ル": OldRu, "リ": OldRi,
}

// CType is the full conjugation type value. Only the row field matching
// Family is meaningful.
type CType struct {
	Family Family

	Row        Gyou // Five, LowerTwo
	FourRow    FourRow
	UpperTwo   UpperTwoRow
	KaRow      KaIrregularRow
	SaRow      SaIrregularRow
	Keiyoushi  KeiyoushiRow
	Special    SpecialRow
	Old        OldRow

	RawRow string // verbatim dictionary text, always preserved
}

// ParseError reports an unrecognised conjugation-type family.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string { return fmt.Sprintf("ctype: unrecognised family %q", e.Value) }

// Parse decodes a dictionary row's ctype field (spec §4.1 field 5) from
// its two halves: a field spelled "五段・カ行" is passed as ("五段",
// "カ行"), and a field with no row part as (family, "*").
func Parse(family, row string) (CType, error) {
	fam, ok := familyNames[family]
	if !ok {
		return CType{}, &ParseError{Value: family}
	}
	c := CType{Family: fam, RawRow: row}
	switch fam {
	case Five, LowerTwo:
		c.Row = gyouNames[row]
	case Four:
		c.FourRow = fourRowNames[row]
	case UpperTwo:
		c.UpperTwo = upperTwoRowNames[row]
	case KaIrregular:
		c.KaRow = kaIrregularRowNames[row]
	case SaIrregular:
		c.SaRow = saIrregularRowNames[row]
	case Keiyoushi:
		c.Keiyoushi = keiyoushiRowNames[row]
	case Special:
		c.Special = specialRowNames[row]
	case Old:
		c.Old = oldRowNames[row]
	}
	return c, nil
}

// ID returns the jpcommon /B:/C:/D: ctype_id (jpreprocess-jpcommon
// word_attr/ctype.rs), or ok=false for Family == None (serialises as "xx").
func (c CType) ID() (id int, ok bool) {
	switch c.Family {
	case None:
		return 0, false
	case KaIrregular:
		return 5, true
	case SaIrregular:
		return 4, true
	case RaIrregular:
		return 6, true
	case One:
		return 3, true
	case Keiyoushi:
		return 7, true
	case Five:
		return 1, true
	case Four:
		return 6, true
	case Special:
		return 7, true
	case LowerTwo, UpperTwo:
		return 6, true
	case NoConjugation:
		return 6, true
	case Old:
		return 6, true
	default:
		return 0, false
	}
}
