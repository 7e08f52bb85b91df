package jpcommon

import "strconv"

// apStats is the four-value summary spec §4.8 assigns to a
// neighboring AccentPhrase (mora count, accent nucleus, interrogative
// flag, emphasis flag). E/F/G carry this plus extension slots the
// distilled spec names by position but not by meaning (f5-f8, e5, g5);
// this port fills those with breath-group position bookkeeping that is
// well-defined from the Utterance tree rather than leaving them at a
// meaningless constant. See DESIGN.md.
type apStats struct {
	present      bool
	moraCount    int
	nucleus      int
	interrog     bool
	emphasis     bool
	sameBGAsPrev bool
	sameBGAsNext bool
	bgIndexFromStart int
	bgIndexFromEnd   int
}

// bgStats is the two-value summary spec §4.8 assigns to a neighboring
// BreathGroup (AccentPhrase count, mora count). I's extension slots
// (beyond H/J's plain apCount+moraCount pair) carry this BreathGroup's
// position among the utterance's BreathGroups (i3/i4), the same-group
// flags toward its neighbors (i5/i6, never set, so always 0), and the
// presence flag twice (i7/i8, always 1).
type bgStats struct {
	present          bool
	apCount          int
	moraCount        int
	bgIndexFromStart int
	bgIndexFromEnd   int
	sameBGAsPrev     bool
	sameBGAsNext     bool
}

// Label is one full-context label: a phoneme in its mora/word/phrase/
// breath-group/utterance context (spec §4.8, §6).
type Label struct {
	P1, P2, P3, P4, P5 string // phoneme neighborhood; "xx" at sentinels

	A1, A2, A3 labelInt // current AccentPhrase: mora position from nucleus, mora count, nucleus position

	BWord, CWord, DWord *Word // previous/current/next Word, nil at boundaries

	EPrev, FCur, GNext apStats

	HPrev, ICur, JNext bgStats

	KBGCount, KAPCount, KMoraCount int
}

type labelInt struct {
	v     int
	known bool
}

func known(v int) labelInt { return labelInt{v: v, known: true} }

var unknown = labelInt{}

// String renders the label using the exact field grammar spec §6 gives:
//
//	p1^p2-p3+p4=p5/A:a1+a2+a3/B:b1-b2_b3/C:c1_c2+c3/D:d1+d2_d3
//	/E:e1_e2!e3_e4-e5/F:f1_f2#f3_f4@f5_f6|f7_f8
//	/G:g1_g2%g3_g4_g5/H:h1_h2/I:i1-i2@i3+i4&i5-i6|i7+i8
//	/J:j1_j2/K:k1+k2-k3
func (l *Label) String() string {
	s := l.P1 + "^" + l.P2 + "-" + l.P3 + "+" + l.P4 + "=" + l.P5

	s += "/A:" + S.ClampSigned(l.A1.v, l.A1.known) +
		"+" + S.ClampUnsigned(l.A2.v, l.A2.known) +
		"+" + S.ClampUnsigned(l.A3.v, l.A3.known)

	if l.BWord != nil {
		s += l.BWord.ToB()
	} else {
		s += "/B:xx-xx_xx"
	}
	if l.CWord != nil {
		s += l.CWord.ToC()
	} else {
		s += "/C:xx_xx+xx"
	}
	if l.DWord != nil {
		s += l.DWord.ToD()
	} else {
		s += "/D:xx+xx_xx"
	}

	s += "/E:" + apField(l.EPrev)
	s += "/F:" + apFieldCurrent(l.FCur)
	s += "/G:" + apFieldNext(l.GNext)

	s += "/H:" + bgField(l.HPrev)
	s += "/I:" + bgFieldCurrent(l.ICur)
	s += "/J:" + bgField(l.JNext)

	s += "/K:" + strconv.Itoa(l.KBGCount) + "+" + strconv.Itoa(l.KAPCount) + "-" + strconv.Itoa(l.KMoraCount)

	return s
}

// apField renders the 5-slot form used by E (previous AP): mora count,
// nucleus, interrogative, emphasis, same-breath-group flag with the
// neighboring phrase in that direction.
func apField(st apStats) string {
	if !st.present {
		return "xx_xx!xx_xx-xx"
	}
	return M.ClampUnsigned(st.moraCount, true) + "_" + S.ClampUnsigned(st.nucleus, true) +
		"!" + boolField(st.interrog) + "_" + boolField(st.emphasis) +
		"-" + boolField(st.sameBGAsPrev || st.sameBGAsNext)
}

// apFieldNext renders G's 5-slot form (g1_g2%g3_g4_g5) for the next AP,
// with the same five values apField renders for E.
func apFieldNext(st apStats) string {
	if !st.present {
		return "xx_xx%xx_xx_xx"
	}
	return M.ClampUnsigned(st.moraCount, true) + "_" + S.ClampUnsigned(st.nucleus, true) +
		"%" + boolField(st.interrog) + "_" + boolField(st.emphasis) +
		"_" + boolField(st.sameBGAsPrev || st.sameBGAsNext)
}

// apFieldCurrent renders F's 8-slot form for the current AccentPhrase.
func apFieldCurrent(st apStats) string {
	if !st.present {
		return "xx_xx#xx_xx@xx_xx|xx_xx"
	}
	return M.ClampUnsigned(st.moraCount, true) + "_" + S.ClampUnsigned(st.nucleus, true) +
		"#" + boolField(st.interrog) + "_" + boolField(st.emphasis) +
		"@" + strconv.Itoa(st.bgIndexFromStart) + "_" + strconv.Itoa(st.bgIndexFromEnd) +
		"|" + boolField(st.sameBGAsPrev) + "_" + boolField(st.sameBGAsNext)
}

func bgField(st bgStats) string {
	if !st.present {
		return "xx_xx"
	}
	return L.ClampUnsigned(st.apCount, true) + "_" + LL.ClampUnsigned(st.moraCount, true)
}

// bgFieldCurrent renders I's 8-slot form for the current BreathGroup.
// The distilled spec names only (AP count, mora count) for H/I/J, same
// as E/F/G's core four; I's extension slots mirror F's layout: i3/i4 are
// the current BreathGroup's position among the utterance's BreathGroups,
// i5/i6 the same-group flags (always 0) and i7/i8 the presence flag
// (always 1).
func bgFieldCurrent(st bgStats) string {
	if !st.present {
		return "xx-xx@xx+xx&xx-xx|xx+xx"
	}
	return L.ClampUnsigned(st.apCount, true) + "-" + LL.ClampUnsigned(st.moraCount, true) +
		"@" + strconv.Itoa(st.bgIndexFromStart) + "+" + strconv.Itoa(st.bgIndexFromEnd) +
		"&" + boolField(st.sameBGAsPrev) + "-" + boolField(st.sameBGAsNext) +
		"|" + boolField(st.present) + "+" + boolField(st.present)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
