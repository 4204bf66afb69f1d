package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"
)

const CurrencySymbol = "₽"

// FPrice formats whole currency units with a space as the thousands
// separator, the way the storefront shows prices: 134000 -> "134 000 ₽".
func FPrice(n int64) string {
	return strings.ReplaceAll(humanize.Comma(n), ",", " ") + " " + CurrencySymbol
}

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// GenKSUID returns a time-sortable id for commands and requests.
func GenKSUID() string {
	return ksuid.New().String()
}
