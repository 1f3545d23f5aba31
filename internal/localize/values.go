package localize

import "strings"

// Status classifies an amenity value.
type Status string

const (
	StatusNone Status = ""
	StatusYes  Status = "yes"
	StatusNo   Status = "no"
	StatusInfo Status = "info"
)

// ValueMap translates the stock amenity values the directory API returns.
var ValueMap = map[string]string{
	"あり":      "Available",
	"なし":      "Not available",
	"未確認":     "Unconfirmed",
	"利用可":     "Accepted",
	"利用不可":    "Not accepted",
	"営業している":  "Yes",
	"営業していない": "No",
	"貸切可":     "Available",
	"貸切不可":    "Not available",
	"応相談":     "By arrangement",
	"全席禁煙":    "Fully non-smoking",
	"全席喫煙可":   "Smoking allowed throughout",
	"禁煙席あり":   "Non-smoking section available",
	"喫煙席あり":   "Smoking section available",
	"分煙":      "Smoking/non-smoking sections",
	"お子様連れ歓迎": "Children welcome",
	"お子様連れOK": "Children welcome",
	"お子様連れ禁止": "No children",
	"可":       "Yes",
	"不可":      "No",
	"OK":      "Yes",
	"NG":      "No",
}

var (
	positiveValues = map[string]bool{"Available": true, "Accepted": true, "Yes": true, "Children welcome": true}
	negativeValues = map[string]bool{"Not available": true, "Not accepted": true, "No": true, "No children": true}

	positiveMarkers = []string{"あり", "可", "OK", "歓迎"}
	negativeMarkers = []string{"なし", "不可", "禁止", "NG"}
)

// IsKnown reports whether raw has a dictionary translation.
func IsKnown(raw string) bool {
	_, ok := ValueMap[strings.TrimSpace(raw)]
	return ok
}

// ParseStatus classifies an amenity value. Dictionary values are classified
// by their English meaning; other values by the markers they contain.
// Blank values have StatusNone.
func ParseStatus(raw string) Status {
	v := strings.TrimSpace(raw)
	if v == "" {
		return StatusNone
	}

	if mapped, ok := ValueMap[v]; ok {
		switch {
		case positiveValues[mapped]:
			return StatusYes
		case negativeValues[mapped]:
			return StatusNo
		default:
			return StatusInfo
		}
	}

	// Positive markers are checked first, so an unlisted value such as
	// 利用不可能 counts as yes through 可.
	if containsAny(v, positiveMarkers) {
		return StatusYes
	}
	if containsAny(v, negativeMarkers) {
		return StatusNo
	}
	return StatusInfo
}

// Localise returns the dictionary translation of raw, or raw trimmed when
// it has none.
func Localise(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	if mapped, ok := ValueMap[v]; ok {
		return mapped
	}
	return v
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
