package jpcommon

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
)

// Word is one Utterance word: label-emission ids plus its owned Mora
// sequence (spec §3 Utterance model: "Word -> metadata (pos/ctype/cform
// IDs) + ordered list of Mora"), grounded on
// jpreprocess-core/src/jpcommon/label/word.rs's to_b/to_c/to_d format.
type Word struct {
	POSID   int
	POSOK   bool
	CTypeID int
	CTypeOK bool
	CFormID int
	CFormOK bool
	Moras   []mora.Mora
}

// ToB renders this word as the previous-word field `/B:pos-ctype_cform`.
func (w *Word) ToB() string {
	return "/B:" + FormatID(w.POSID, w.POSOK) + "-" + FormatID(w.CTypeID, w.CTypeOK) + "_" + FormatID(w.CFormID, w.CFormOK)
}

// ToC renders this word as the current-word field `/C:pos_ctype+cform`.
func (w *Word) ToC() string {
	return "/C:" + FormatID(w.POSID, w.POSOK) + "_" + FormatID(w.CTypeID, w.CTypeOK) + "+" + FormatID(w.CFormID, w.CFormOK)
}

// ToD renders this word as the next-word field `/D:pos+ctype_cform`.
func (w *Word) ToD() string {
	return "/D:" + FormatID(w.POSID, w.POSOK) + "+" + FormatID(w.CTypeID, w.CTypeOK) + "_" + FormatID(w.CFormID, w.CFormOK)
}
