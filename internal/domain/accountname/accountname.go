// Package accountname folds an account holder's display name into the
// uppercase ASCII form that banking apps print under a VietQR code.
package accountname

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Xausdorf/vietqr-receive/internal/domain/entity"
)

// Fallback is shown and encoded when no user name is available.
const Fallback = "ALEX NGUYEN"

// đ and Đ carry a stroke, not a combining mark, so NFD leaves them intact.
var stroke = runes.Map(func(r rune) rune {
	switch r {
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	return r
})

// Normalize uppercases name and strips its diacritics.
func Normalize(name string) string {
	upper := cases.Upper(language.Und).String(name)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), stroke, norm.NFC)
	folded, _, err := transform.String(t, upper)
	if err != nil {
		return upper
	}
	return folded
}

// ForUser returns the normalized name of u, or Fallback when u is nil or
// has an empty name. A blank but non-empty name is kept as is.
func ForUser(u *entity.User) string {
	if u == nil || u.Name() == "" {
		return Fallback
	}
	return Normalize(u.Name())
}
