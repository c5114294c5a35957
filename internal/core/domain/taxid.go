package domain

import "strings"

// ValidDocument accepts either a CPF (11 digits) or a CNPJ (14 digits),
// with or without punctuation.
func ValidDocument(doc string) bool {
	digits := stripNonDigits(doc)
	switch len(digits) {
	case 11:
		return validCPF(digits)
	case 14:
		return validCNPJ(digits)
	}
	return false
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allEqual(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// validCPF checks the two mod-11 verification digits of a CPF.
func validCPF(digits string) bool {
	if allEqual(digits) {
		return false
	}

	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * (pos + 1 - i)
		}
		check := (sum * 10) % 11 % 10
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// validCNPJ checks the two mod-11 verification digits of a CNPJ.
func validCNPJ(digits string) bool {
	if allEqual(digits) {
		return false
	}

	for _, pos := range []int{12, 13} {
		weights := cnpjWeights[len(cnpjWeights)-pos:]
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * weights[i]
		}
		check := 0
		if rem := sum % 11; rem >= 2 {
			check = 11 - rem
		}
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}
