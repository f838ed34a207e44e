package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var turkishFolder = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ü", "u", "Ü", "U",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
	"ö", "o", "Ö", "O",
	"ç", "c", "Ç", "C",
)

// FoldSearchKey normaliza um texto para comparação na busca: sem espaços nas
// pontas, letras turcas trocadas pela base ASCII, minúsculas e sem acentos.
func FoldSearchKey(s string) string {
	folded := strings.ToLower(turkishFolder.Replace(strings.TrimSpace(s)))

	// o transformer guarda estado, então não pode ser compartilhado entre goroutines
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, folded); err == nil {
		return stripped
	}
	return folded
}
