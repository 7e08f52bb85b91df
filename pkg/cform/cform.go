// Package cform implements the conjugation-form enum (spec §3), grounded
// directly on jpreprocess-jpcommon/src/word_attr/cform.rs: the ~27
// dictionary-level forms bucket into 7 label-emission ids.
package cform

import "fmt"

// CForm is a dictionary-level conjugation form.
type CForm int

const (
	None CForm = iota
	ConjunctionGaru
	Conditional
	ConditionalContraction1
	ConditionalContraction2
	Basic
	BasicDoubledConsonant
	BasicModern
	BasicEuphony
	BasicOld
	Mizen
	MizenConjunctionU
	MizenConjunctionNu
	MizenConjunctionReru
	MizenSpecial
	ImperativeE
	ImperativeI
	ImperativeRo
	ImperativeYo
	TaigenConjunction
	TaigenConjunctionSpecial
	TaigenConjunctionSpecial2
	Renyou
	RenyouConjunctionGozai
	RenyouConjunctionTa
	RenyouConjunctionTe
	RenyouConjunctionDe
	RenyouConjunctionNi
)

var names = map[string]CForm{
	"*":     None,
	"ガル接続":  ConjunctionGaru,
	"仮定形":   Conditional,
	"仮定縮約１": ConditionalContraction1,
	"仮定縮約２": ConditionalContraction2,
	"基本形":   Basic,
	"音便基本形": BasicDoubledConsonant,
	"現代基本形": BasicModern,
	"基本形-促音便": BasicEuphony,
	"文語基本形": BasicOld,
	"未然形":    Mizen,
	"未然ウ接続":  MizenConjunctionU,
	"未然ヌ接続":  MizenConjunctionNu,
	"未然レル接続": MizenConjunctionReru,
	"未然特殊":   MizenSpecial,
	"命令ｅ":    ImperativeE,
	"命令ｉ":    ImperativeI,
	"命令ｒｏ":   ImperativeRo,
	"命令ｙｏ":   ImperativeYo,
	"体言接続":    TaigenConjunction,
	"体言接続特殊":  TaigenConjunctionSpecial,
	"体言接続特殊２": TaigenConjunctionSpecial2,
	"連用形":     Renyou,
	"連用ゴザイ接続": RenyouConjunctionGozai,
	"連用タ接続":   RenyouConjunctionTa,
	"連用テ接続":   RenyouConjunctionTe,
	"連用デ接続":   RenyouConjunctionDe,
	"連用ニ接続":   RenyouConjunctionNi,
}

// ParseError reports an unrecognised conjugation form.
type ParseError struct{ Value string }

func (e *ParseError) Error() string { return fmt.Sprintf("cform: unrecognised form %q", e.Value) }

// Parse decodes a dictionary row's cform field (spec §4.1 field 6).
func Parse(s string) (CForm, error) {
	if f, ok := names[s]; ok {
		return f, nil
	}
	return None, &ParseError{Value: s}
}

// IsRenyou reports whether this is any 連用形 variant, used by accent
// rules 11/12 (spec §4.4).
func (f CForm) IsRenyou() bool {
	switch f {
	case Renyou, RenyouConjunctionGozai, RenyouConjunctionTa, RenyouConjunctionTe, RenyouConjunctionDe, RenyouConjunctionNi:
		return true
	}
	return false
}

// ID returns the jpcommon /B:/C:/D: cform_id, or ok=false for None
// (serialises as "xx").
func (f CForm) ID() (id int, ok bool) {
	switch f {
	case None:
		return 0, false
	case ConjunctionGaru:
		return 6, true
	case Conditional, ConditionalContraction1, ConditionalContraction2:
		return 4, true
	case Basic, BasicDoubledConsonant, BasicModern, BasicEuphony, BasicOld:
		return 2, true
	case Mizen, MizenConjunctionU, MizenConjunctionNu, MizenConjunctionReru, MizenSpecial:
		return 0, true
	case ImperativeE, ImperativeI, ImperativeRo, ImperativeYo:
		return 5, true
	case TaigenConjunction, TaigenConjunctionSpecial, TaigenConjunctionSpecial2:
		return 3, true
	case Renyou, RenyouConjunctionGozai, RenyouConjunctionTa, RenyouConjunctionTe, RenyouConjunctionDe, RenyouConjunctionNi:
		return 1, true
	default:
		return 0, false
	}
}
