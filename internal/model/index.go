package model

import (
	"fmt"
	"sort"
	"strings"
)

// indexSymbols maps supported market index aliases to provider symbols.
var indexSymbols = map[string]string{
	"SP500":       "^GSPC",
	"NASDAQ":      "^IXIC",
	"DOW":         "^DJI",
	"RUSSELL2000": "^RUT",
}

// ResolveIndex translates a market index alias into its provider symbol.
func ResolveIndex(name string) (string, error) {
	if sym, ok := indexSymbols[name]; ok {
		return sym, nil
	}
	return "", fmt.Errorf("unknown market index %q (supported: %s)", name, strings.Join(IndexNames(), ", "))
}

// IndexNames lists the supported index aliases in stable order.
func IndexNames() []string {
	names := make([]string, 0, len(indexSymbols))
	for n := range indexSymbols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
