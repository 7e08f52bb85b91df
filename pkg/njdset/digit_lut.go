package njdset

// Digit-pass lookup tables (spec §4.3), grounded on
// jpreprocess-njd/src/njd_set/digit/{standard,lut,lut3}.rs and
// jpreprocess-core/src/open_jtalk/digit/lut/numeral.rs. Table names keep
// the original numeral_listN numbering from that source so the mapping
// back to the grounding is traceable.

// digitNormalize is numeral_list1: surface spellings that normalize to
// one canonical kanji digit 〇-九 (spec §4.3 Stage A).
var digitNormalize = map[string]string{
	"○": "〇",
	"0": "〇", "１": "一", "２": "二", "３": "三", "４": "四",
	"５": "五", "６": "六", "７": "七", "８": "八", "９": "九",
	"1": "一", "2": "二", "3": "三", "4": "四",
	"5": "五", "6": "六", "7": "七", "8": "八", "9": "九",
	"いち": "一", "に": "二", "さん": "三", "よん": "四", "し": "四",
	"ご": "五", "ろく": "六", "なな": "七", "しち": "七", "はち": "八",
	"きゅう": "九", "く": "九",
	"壱": "一", "弐": "二", "貳": "二", "ニ": "二", "参": "三",
}

// digitPron is the canonical pronunciation of each normalized digit
// kanji, keyed from the dictionary's own field-11 convention.
var digitPron = map[string]string{
	"〇": "レイ", "一": "イチ", "二": "ニ", "三": "サン", "四": "ヨン",
	"五": "ゴ", "六": "ロク", "七": "ナナ", "八": "ハチ", "九": "キュウ",
}

// numeral_list4: kanji accepted as a bare digit/quantifier node in a
// kazu run (一二三四五六七八九何幾数).
var numeralList4 = map[string]bool{
	"一": true, "二": true, "三": true, "四": true, "五": true,
	"六": true, "七": true, "八": true, "九": true,
	"何": true, "幾": true, "数": true,
}

// numeral_list5 in the source is a pure membership set (十/百/千/万/…,
// no paired value); this port repurposes it as a fixed-accent table for
// a terminal multiplier, since no retrieved source shows how the digit
// pass actually computes accent. The integers below are an unresolved,
// un-grounded guess (standard-dictionary NHK accents), not a
// transcription of anything in the grounding pack — see DESIGN.md.
var numeralList5 = map[string]int{
	"十": 1, "百": 2, "千": 1, "万": 1,
	"億": 0, "兆": 0, "京": 0, "垓": 0, "𥝱": 0, "穣": 0, "溝": 0,
	"澗": 0, "正": 0, "載": 0, "極": 0, "恒河沙": 0, "阿僧祇": 0,
	"那由他": 0, "不可思議": 0, "無量大数": 0,
}

// numeral_list6: the multiplier subset {百,千} whose following
// numerative is a voicing/euphony trigger site (spec §4.3 Stage B).
var numeralList6 = map[string]bool{"百": true, "千": true}

// voicingClass distinguishes how a preceding digit mutates a numerative's
// initial ハ-row mora.
type voicingClass int

const (
	noVoicing voicingClass = iota
	voicedClass              // ハ→バ
	semiVoicedClass          // ハ→パ
)

// numeral_list7: digits that force voicing/semi-voicing of the
// following numerative's initial mora (三→Voiced, 六→SemiVoiced,
// 八→SemiVoiced, 何→Voiced).
var numeralList7 = map[string]voicingClass{
	"サン": voicedClass,
	"ロク": semiVoicedClass,
	"ハチ": semiVoicedClass,
	"ナン": voicedClass,
}

// haRowPair holds a ハ-row mora symbol's voiced/semi-voiced form.
type haRowPair struct{ voiced, semiVoiced string }

var haRowVoicing = map[string]haRowPair{
	"ハ": {"バ", "パ"}, "ヒ": {"ビ", "ピ"}, "フ": {"ブ", "プ"},
	"ヘ": {"ベ", "ペ"}, "ホ": {"ボ", "ポ"},
	"ヒャ": {"ビャ", "ピャ"}, "ヒュ": {"ビュ", "ピュ"}, "ヒョ": {"ビョ", "ピョ"},
}

// numeral_list8: the multiplier that triggers numeral_list9's digit
// contraction (百).
var numeralList8 = map[string]bool{"百": true}

// numeral_list9: digit contraction before 百 — (new_pron, accent_delta,
// new_mora_size).
var numeralList9 = map[string]euphony{
	"ロク": {"ロッ", 0, 2},
	"ハチ": {"ハッ", 0, 2},
}

// numeral_list10: the multiplier set that triggers numeral_list11's
// digit contraction (千,兆).
var numeralList10 = map[string]bool{"千": true, "兆": true}

// numeral_list11: digit contraction before 千/兆 — (new_pron,
// accent_delta, new_mora_size).
var numeralList11 = map[string]euphony{
	"イチ": {"イッ", 0, 2},
	"ハチ": {"ハッ", 0, 2},
	"ジュウ": {"ジュッ", 1, 2},
}

// euphony is one numeral_list9/11 entry (spec §4.3 Stage B).
type euphony struct {
	NewPron     string
	AccentDelta int
	NewMoraSize int
}

// isPeriod reports whether s is a digit-group boundary that still keeps
// two digit nodes in the same numeric group (spec §4.3 Stage C boundary
// policy), grounded on njd_set/digit/standard.rs's is_period.
func isPeriod(s string) bool {
	return s == "．" || s == "・"
}
