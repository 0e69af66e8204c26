package usecase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize recorta espacios y lleva el texto a NFC, para que dos SKUs visualmente
// iguales (p. ej. "é" compuesto vs. descompuesto) se consideren el mismo.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
