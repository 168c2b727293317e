// Package fiscalcode gera o codice fiscale italiano a partir dos dados
// anagráficos do usuário (regras de consoantes/vogais, código do mês,
// offset de 40 dias para sexo F, código do comune e caractere de
// controle).
package fiscalcode

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/salusbook/api-prenotazioni/internal/httperr"
)

const monthCodes = "ABCDEHLMPRST"

// Comunes conhecidos; qualquer outro cai no código sentinela.
var townCodes = map[string]string{
	"ROMA":   "H501",
	"MILANO": "F205",
	"NAPOLI": "F839",
}

const unknownTownCode = "XXXX"

var oddValues = map[byte]int{
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9, 'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11, 'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24, 'Z': 23,
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9, '5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
}

var evenValues = map[byte]int{
	'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4, 'F': 5, 'G': 6, 'H': 7, 'I': 8, 'J': 9,
	'K': 10, 'L': 11, 'M': 12, 'N': 13, 'O': 14, 'P': 15, 'Q': 16, 'R': 17, 'S': 18, 'T': 19,
	'U': 20, 'V': 21, 'W': 22, 'X': 23, 'Y': 24, 'Z': 25,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}

func letters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func split(s string) (consonants, vowels string) {
	var c, v strings.Builder
	for _, r := range s {
		if isVowel(r) {
			v.WriteRune(unicode.ToUpper(r))
		} else {
			c.WriteRune(unicode.ToUpper(r))
		}
	}
	return c.String(), v.String()
}

// NameCode: com quatro ou mais consoantes usa a 1ª, 3ª e 4ª.
func NameCode(name string) string {
	name = letters(name)
	if len(name) < 3 {
		return strings.ToUpper(name) + "X"
	}

	consonants, vowels := split(name)
	if len(consonants) < 4 {
		if len(consonants) < 3 {
			return pad(consonants, vowels)
		}
		return consonants
	}

	return string([]byte{consonants[0], consonants[2], consonants[3]})
}

func SurnameCode(surname string) string {
	surname = letters(surname)
	if len(surname) < 3 {
		return strings.ToUpper(surname) + "X"
	}

	consonants, vowels := split(surname)
	if len(consonants) < 3 {
		return pad(consonants, vowels)
	}

	return consonants[:3]
}

// pad completa consoantes insuficientes com as duas primeiras vogais.
func pad(consonants, vowels string) string {
	if len(vowels) > 2 {
		vowels = vowels[:2]
	}
	code := consonants + vowels
	if len(code) > 3 {
		code = code[:3]
	}
	return code
}

// BirthCode codifica data de nascimento e sexo (dia + 40 para F).
func BirthCode(birthDate, sex string) (string, error) {
	t, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_birth_date")
	}

	year := fmt.Sprintf("%02d", t.Year()%100)
	month := string(monthCodes[int(t.Month())-1])

	day := t.Day()
	if strings.EqualFold(sex, "F") {
		day += 40
	}

	return fmt.Sprintf("%s%s%02d", year, month, day), nil
}

func TownCode(town string) string {
	if code, ok := townCodes[strings.ToUpper(town)]; ok {
		return code
	}
	return unknownTownCode
}

// CheckChar calcula o caractere de controle sobre os 15 primeiros
// caracteres: posições ímpares (1ª, 3ª, ...) pesam pela tabela odd,
// pares pela tabela even.
func CheckChar(half string) byte {
	sum := 0
	for i := 0; i < len(half); i++ {
		if i%2 == 0 {
			sum += oddValues[half[i]]
		} else {
			sum += evenValues[half[i]]
		}
	}
	return byte(sum%26 + 'A')
}

// Generate monta o código completo de 16 caracteres.
func Generate(firstName, lastName, birthDate, sex, town string) (string, error) {
	birth, err := BirthCode(birthDate, sex)
	if err != nil {
		return "", err
	}

	half := SurnameCode(lastName) + NameCode(firstName) + birth + TownCode(town)
	return half + string(CheckChar(half)), nil
}
