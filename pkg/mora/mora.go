// Package mora defines the closed katakana mora vocabulary used to
// represent Japanese pronunciation strings throughout the pipeline.
package mora

import "strings"

// Phoneme is an open_jtalk-style phoneme code. The empty string means
// "no phoneme in this slot" (e.g. the consonant half of a vowel-only mora).
type Phoneme string

// Kind distinguishes the handful of mora shapes that behave specially
// in the passes downstream (devoicing, long-vowel folding, accent
// counting).
type Kind int

const (
	// Normal moras carry a consonant (optional) and a vowel.
	Normal Kind = iota
	// Nasal is the moraic ん/ン.
	Nasal
	// Geminate is the small っ/ッ (consonant gemination marker).
	Geminate
	// LongMark is the chouon ー, which elongates the preceding vowel.
	LongMark
	// Pause is the sentinel mora slot used for breath-group punctuation.
	Pause
)

// Mora is one timing unit of a pronunciation string.
type Mora struct {
	Symbol    string
	Consonant Phoneme
	Vowel     Phoneme
	Kind      Kind
	// Unvoiced is set by the unvoiced-vowel pass (spec §4.6). It is
	// meaningless (always false) for moras that HasVowel reports false for.
	Unvoiced bool
}

// HasVowel reports whether this mora carries a devoiceable vowel.
func (m Mora) HasVowel() bool {
	return m.Kind == Normal && m.Vowel != ""
}

// CanBeTouten reports whether this mora slot is a punctuation/pause
// sentinel rather than a phonemic mora.
func (m Mora) CanBeTouten() bool {
	return m.Kind == Pause
}

// EffectivePhoneme returns the vowel part of the phoneme string used in
// label emission: "pau" for a Pause mora, the upper-cased vowel for an
// unvoiced mora, and the plain vowel otherwise. The consonant and the
// sil/xx sentinels are added by the caller (jpcommon).
func (m Mora) EffectivePhoneme() string {
	if m.Kind == Pause {
		return "pau"
	}
	if m.Unvoiced && m.HasVowel() {
		return strings.ToUpper(string(m.Vowel))
	}
	return string(m.Vowel)
}

// table rows: symbol, consonant phoneme, vowel phoneme.
type row struct {
	symbol    string
	consonant Phoneme
	vowel     Phoneme
}

var plainRows = []row{
	{"ア", "", "a"}, {"イ", "", "i"}, {"ウ", "", "u"}, {"エ", "", "e"}, {"オ", "", "o"},
	{"カ", "k", "a"}, {"キ", "k", "i"}, {"ク", "k", "u"}, {"ケ", "k", "e"}, {"コ", "k", "o"},
	{"ガ", "g", "a"}, {"ギ", "g", "i"}, {"グ", "g", "u"}, {"ゲ", "g", "e"}, {"ゴ", "g", "o"},
	{"サ", "s", "a"}, {"シ", "sh", "i"}, {"ス", "s", "u"}, {"セ", "s", "e"}, {"ソ", "s", "o"},
	{"ザ", "z", "a"}, {"ジ", "j", "i"}, {"ズ", "z", "u"}, {"ゼ", "z", "e"}, {"ゾ", "z", "o"},
	{"タ", "t", "a"}, {"チ", "ch", "i"}, {"ツ", "ts", "u"}, {"テ", "t", "e"}, {"ト", "t", "o"},
	{"ダ", "d", "a"}, {"ヂ", "j", "i"}, {"ヅ", "z", "u"}, {"デ", "d", "e"}, {"ド", "d", "o"},
	{"ナ", "n", "a"}, {"ニ", "n", "i"}, {"ヌ", "n", "u"}, {"ネ", "n", "e"}, {"ノ", "n", "o"},
	{"ハ", "h", "a"}, {"ヒ", "h", "i"}, {"フ", "f", "u"}, {"ヘ", "h", "e"}, {"ホ", "h", "o"},
	{"バ", "b", "a"}, {"ビ", "b", "i"}, {"ブ", "b", "u"}, {"ベ", "b", "e"}, {"ボ", "b", "o"},
	{"パ", "p", "a"}, {"ピ", "p", "i"}, {"プ", "p", "u"}, {"ペ", "p", "e"}, {"ポ", "p", "o"},
	{"マ", "m", "a"}, {"ミ", "m", "i"}, {"ム", "m", "u"}, {"メ", "m", "e"}, {"モ", "m", "o"},
	{"ヤ", "y", "a"}, {"ユ", "y", "u"}, {"ヨ", "y", "o"},
	{"ラ", "r", "a"}, {"リ", "r", "i"}, {"ル", "r", "u"}, {"レ", "r", "e"}, {"ロ", "r", "o"},
	{"ワ", "w", "a"}, {"ヲ", "", "o"},
	{"ヴァ", "v", "a"}, {"ヴィ", "v", "i"}, {"ヴ", "v", "u"}, {"ヴェ", "v", "e"}, {"ヴォ", "v", "o"},
	{"ファ", "f", "a"}, {"フィ", "f", "i"}, {"フェ", "f", "e"}, {"フォ", "f", "o"},
	{"ティ", "t", "i"}, {"ディ", "d", "i"}, {"トゥ", "t", "u"}, {"ドゥ", "d", "u"},
	{"ウィ", "w", "i"}, {"ウェ", "w", "e"}, {"ウォ", "w", "o"},
	{"シェ", "sh", "e"}, {"ジェ", "j", "e"}, {"チェ", "ch", "e"},
	{"ツァ", "ts", "a"}, {"ツィ", "ts", "i"}, {"ツェ", "ts", "e"}, {"ツォ", "ts", "o"},
}

var youonRows = []row{
	{"キャ", "ky", "a"}, {"キュ", "ky", "u"}, {"キョ", "ky", "o"},
	{"ギャ", "gy", "a"}, {"ギュ", "gy", "u"}, {"ギョ", "gy", "o"},
	{"シャ", "sh", "a"}, {"シュ", "sh", "u"}, {"ショ", "sh", "o"},
	{"ジャ", "j", "a"}, {"ジュ", "j", "u"}, {"ジョ", "j", "o"},
	{"チャ", "ch", "a"}, {"チュ", "ch", "u"}, {"チョ", "ch", "o"},
	{"ヂャ", "j", "a"}, {"ヂュ", "j", "u"}, {"ヂョ", "j", "o"},
	{"ニャ", "ny", "a"}, {"ニュ", "ny", "u"}, {"ニョ", "ny", "o"},
	{"ヒャ", "hy", "a"}, {"ヒュ", "hy", "u"}, {"ヒョ", "hy", "o"},
	{"ビャ", "by", "a"}, {"ビュ", "by", "u"}, {"ビョ", "by", "o"},
	{"ピャ", "py", "a"}, {"ピュ", "py", "u"}, {"ピョ", "py", "o"},
	{"ミャ", "my", "a"}, {"ミュ", "my", "u"}, {"ミョ", "my", "o"},
	{"リャ", "ry", "a"}, {"リュ", "ry", "u"}, {"リョ", "ry", "o"},
}

// Table maps every katakana spelling in the closed vocabulary to its Mora.
var Table map[string]Mora

// byLength holds every key in Table sorted by descending rune length, so
// Tokenize can greedy-longest-match.
var byLength []string

func init() {
	Table = make(map[string]Mora, len(plainRows)+len(youonRows)+3)
	for _, r := range plainRows {
		Table[r.symbol] = Mora{Symbol: r.symbol, Consonant: r.consonant, Vowel: r.vowel, Kind: Normal}
	}
	for _, r := range youonRows {
		Table[r.symbol] = Mora{Symbol: r.symbol, Consonant: r.consonant, Vowel: r.vowel, Kind: Normal}
	}
	Table["ン"] = Mora{Symbol: "ン", Consonant: "", Vowel: "N", Kind: Nasal}
	Table["ッ"] = Mora{Symbol: "ッ", Consonant: "", Vowel: "cl", Kind: Geminate}
	Table["ー"] = Mora{Symbol: "ー", Consonant: "", Vowel: "", Kind: LongMark}

	byLength = make([]string, 0, len(Table))
	for k := range Table {
		byLength = append(byLength, k)
	}
	// Longest keys must be tried first so 2-rune youon spellings win over
	// their 1-rune prefixes (e.g. キャ before キ).
	for i := 1; i < len(byLength); i++ {
		for j := i; j > 0 && len([]rune(byLength[j])) > len([]rune(byLength[j-1])); j-- {
			byLength[j], byLength[j-1] = byLength[j-1], byLength[j]
		}
	}
}

// PauseMora returns the sentinel used for internal breath pauses in a
// pronunciation sequence (spec §4.8 tree construction); it is not present
// in Table since it never appears in a dictionary pron field.
func PauseMora() Mora {
	return Mora{Symbol: "pau", Kind: Pause}
}

// Tokenize greedily longest-matches s against the katakana alphabet,
// returning one Mora per matched unit. At the first unrecognised rune it
// stops and returns ok=false together with the moras matched before it,
// so callers can build a ParseError.
func Tokenize(s string) (moras []Mora, ok bool) {
	runes := []rune(s)
	for i := 0; i < len(runes); {
		matched := false
		for _, key := range byLength {
			klen := len([]rune(key))
			if i+klen > len(runes) {
				continue
			}
			if string(runes[i:i+klen]) == key {
				moras = append(moras, Table[key])
				i += klen
				matched = true
				break
			}
		}
		if !matched {
			return moras, false
		}
	}
	return moras, true
}
