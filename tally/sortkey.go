// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/vote-report/models"
)

// SortKeyFunc derives a deterministic ordering key from a display name.
// Keys order tied candidates in the output; they never change rank values.
type SortKeyFunc func(name string) string

// PinyinKey transliterates Han characters to pinyin so CJK names sort in
// romanized order. Non-Han runes pass through unchanged.
func PinyinKey() SortKeyFunc {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return func(name string) string {
		return strings.ToLower(strings.Join(pinyin.LazyPinyin(name, args), ""))
	}
}

// CollateKey orders names by the collation rules of the given BCP-47 tag.
func CollateKey(tag string) (SortKeyFunc, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, err
	}
	c := collate.New(t)
	return func(name string) string {
		var buf collate.Buffer
		return string(c.KeyFromString(&buf, name))
	}, nil
}

// FoldKey is the locale-neutral fallback: trimmed, lowercased byte order.
func FoldKey() SortKeyFunc {
	return func(name string) string {
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// KeyForLocale maps the configured locale policy to a sort-key function.
// Unknown tags degrade to FoldKey so a bad flag never aborts a run.
func KeyForLocale(locale string) SortKeyFunc {
	switch locale {
	case models.LocalePinyin:
		return PinyinKey()
	case models.LocaleFold, "":
		return FoldKey()
	default:
		key, err := CollateKey(locale)
		if err != nil {
			return FoldKey()
		}
		return key
	}
}
