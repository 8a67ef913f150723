package validators

import (
	"errors"
)

const (
	KPPLength = 9
)

var (
	ErrNonDigit          = errors.New("value must contain only digits")
	ErrWrongLength       = errors.New("value has wrong length")
	ErrMissingIdentifier = errors.New("either inn or ogrn must be provided")
)

// MissingIdentifierMessage is reported on both the "inn" and "ogrn" fields.
const MissingIdentifierMessage = "Необходимо заполнить хотя бы одно из полей: ИНН или ОГРН."

var (
	innLengths  = []int{10, 12}
	ogrnLengths = []int{13, 15}
)

// IdentifierError describes a single failed identifier check.
// It unwraps to ErrNonDigit or ErrWrongLength.
type IdentifierError struct {
	Field   string
	Kind    error
	Message string
}

func (e *IdentifierError) Error() string {
	return e.Field + ": " + e.Kind.Error()
}

func (e *IdentifierError) Unwrap() error {
	return e.Kind
}

// ValidateINN accepts an empty value or 10/12 digits.
// Digits are checked before the length.
func ValidateINN(inn string) error {
	if inn == "" {
		return nil
	}

	if !IsOnlyNumbers(inn) {
		return &IdentifierError{Field: "inn", Kind: ErrNonDigit, Message: "ИНН должен содержать только цифры."}
	}

	if !hasLength(inn, innLengths) {
		return &IdentifierError{Field: "inn", Kind: ErrWrongLength, Message: "ИНН должен состоять из 10 или 12 цифр."}
	}
	return nil
}

// ValidateKPP accepts an empty value or exactly 9 digits.
// Unlike INN and OGRN, the length is checked first.
func ValidateKPP(kpp string) error {
	if kpp == "" {
		return nil
	}

	if len(kpp) != KPPLength {
		return &IdentifierError{Field: "kpp", Kind: ErrWrongLength, Message: "КПП должен состоять из 9 цифр."}
	}

	if !IsOnlyNumbers(kpp) {
		return &IdentifierError{Field: "kpp", Kind: ErrNonDigit, Message: "КПП должен содержать только цифры."}
	}
	return nil
}

// ValidateOGRN accepts an empty value or 13/15 digits.
func ValidateOGRN(ogrn string) error {
	if ogrn == "" {
		return nil
	}

	if !IsOnlyNumbers(ogrn) {
		return &IdentifierError{Field: "ogrn", Kind: ErrNonDigit, Message: "ОГРН должен содержать только цифры."}
	}

	if !hasLength(ogrn, ogrnLengths) {
		return &IdentifierError{Field: "ogrn", Kind: ErrWrongLength, Message: "ОГРН должен состоять из 13 или 15 цифр."}
	}
	return nil
}

// ValidateIdentifierPresence fails when neither INN nor OGRN is set.
// Callers resolve the effective pair (see partial updates) before calling it.
func ValidateIdentifierPresence(inn, ogrn string) error {
	if inn == "" && ogrn == "" {
		return ErrMissingIdentifier
	}
	return nil
}

// IsOnlyNumbers reports whether s is a non-empty run of ASCII digits.
func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasLength(s string, lengths []int) bool {
	for _, l := range lengths {
		if len(s) == l {
			return true
		}
	}
	return false
}
