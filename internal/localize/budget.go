package localize

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// budgetNames maps HotPepper budget codes to English price ranges.
var budgetNames = map[string]string{
	"B009": "Under ¥500",
	"B010": "¥501 – ¥1,000",
	"B011": "¥1,001 – ¥1,500",
	"B001": "¥1,501 – ¥2,000",
	"B002": "¥2,001 – ¥3,000",
	"B003": "¥3,001 – ¥4,000",
	"B008": "¥4,001 – ¥5,000",
	"B004": "¥5,001 – ¥7,000",
	"B005": "¥7,001 – ¥10,000",
	"B006": "¥10,001 – ¥15,000",
	"B012": "¥15,001 – ¥20,000",
	"B013": "Over ¥20,000",
}

var yenPrinter = message.NewPrinter(language.English)

// BudgetName returns the English price range for a budget code.
func BudgetName(code string) (string, bool) {
	name, ok := budgetNames[code]
	return name, ok
}

// FormatBudgetAverage turns an average budget such as "9000円" or
// "～3000円" into "¥9,000". The first run of ASCII digits is used; raw is
// returned unchanged when it has none.
func FormatBudgetAverage(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	s := strings.NewReplacer("～", "", "〜", "").Replace(raw)
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return raw
	}
	end := start + 1
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}

	n, err := strconv.ParseUint(s[start:end], 10, 64)
	if err != nil {
		return raw
	}
	return yenPrinter.Sprintf("¥%d", n)
}

// BudgetLabel prefers the range named by code and falls back to the
// formatted average.
func BudgetLabel(code, average string) string {
	if name, ok := BudgetName(code); ok {
		return name
	}
	return FormatBudgetAverage(average)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
