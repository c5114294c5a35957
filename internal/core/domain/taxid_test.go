package domain

import "testing"

func TestValidDocument_CPF(t *testing.T) {
	valid := []string{"52998224725", "529.982.247-25"}
	for _, doc := range valid {
		if !ValidDocument(doc) {
			t.Fatalf("expected %q to be valid", doc)
		}
	}

	invalid := []string{
		"52998224724",    // wrong check digit
		"11111111111",    // repeated digits
		"5299822472",     // too short
		"529982247251",   // 12 digits, neither CPF nor CNPJ
		"",               // empty
		"abc.def.ghi-jk", // no digits
	}
	for _, doc := range invalid {
		if ValidDocument(doc) {
			t.Fatalf("expected %q to be invalid", doc)
		}
	}
}

func TestValidDocument_CNPJ(t *testing.T) {
	valid := []string{"11222333000181", "11.222.333/0001-81"}
	for _, doc := range valid {
		if !ValidDocument(doc) {
			t.Fatalf("expected %q to be valid", doc)
		}
	}

	invalid := []string{
		"11222333000182", // wrong check digit
		"00000000000000", // repeated digits
	}
	for _, doc := range invalid {
		if ValidDocument(doc) {
			t.Fatalf("expected %q to be invalid", doc)
		}
	}
}
