package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Up to 18 integer digits and 2 fractional digits, so the whole number
// never exceeds 20 digits.
var decimalRegex = regexp.MustCompile(`^-?\d{1,18}(\.\d{1,2})?$`)

var errInvalidDecimal = errors.New("invalid decimal")

// New builds a validator with the identifier tags registered and with
// field names reported by their JSON names.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	_ = validate.RegisterValidation("inn", INN)
	_ = validate.RegisterValidation("kpp", KPP)
	_ = validate.RegisterValidation("ogrn", OGRN)
	_ = validate.RegisterValidation("decimal2", Decimal2)
	return validate
}

func INN(fl validator.FieldLevel) bool {
	return checkString(fl, ValidateINN)
}

func KPP(fl validator.FieldLevel) bool {
	return checkString(fl, ValidateKPP)
}

func OGRN(fl validator.FieldLevel) bool {
	return checkString(fl, ValidateOGRN)
}

// Decimal2 accepts decimal strings (json.Number included) with at most two
// fractional digits.
func Decimal2(fl validator.FieldLevel) bool {
	return checkString(fl, func(val string) error {
		if val == "" || decimalRegex.MatchString(val) {
			return nil
		}
		return errInvalidDecimal
	})
}

// IdentifierMessage re-runs the named identifier rule against value and
// returns the human message for whichever check failed.
func IdentifierMessage(tag string, value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}

	var err error
	switch tag {
	case "inn":
		err = ValidateINN(s)
	case "kpp":
		err = ValidateKPP(s)
	case "ogrn":
		err = ValidateOGRN(s)
	default:
		return "", false
	}

	var ierr *IdentifierError
	if errors.As(err, &ierr) {
		return ierr.Message, true
	}
	return "", false
}

func checkString(fl validator.FieldLevel, check func(string) error) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("identifier validator applied to non-string type: %s", field.Kind().String())
		return false
	}
	return check(field.String()) == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(fld.Name)
	}
	return name
}
