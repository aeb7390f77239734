// Package validation checks request payloads and reports every violated
// field. It is independent of the access layer so rules can be exercised on
// their own.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/nyaruka/phonenumbers"
)

// DateLayout is the accepted format of calendar dates.
const DateLayout = "2006-01-02"

// timestampLayouts are tried in order when parsing appointment times.
// Layouts without an offset are interpreted in the validator's location.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// FieldError names one violated field.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email is a required field"`
}

// Errors is the structured list of violations returned by the validator.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the violations.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the names of the violated fields in order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}

// Field builds a single-violation Errors value.
func Field(field, message string) Errors {
	return Errors{{Field: field, Message: message}}
}

// Validator validates request structs using `validate` tags.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	region   string
	loc      *time.Location
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for past/future checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithLocation sets the zone used for timestamps without an offset.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// WithPhoneRegion sets the region assumed for numbers without a country code.
func WithPhoneRegion(region string) Option {
	return func(v *Validator) {
		if region != "" {
			v.region = strings.ToUpper(region)
		}
	}
}

// New returns a Validator with the clinic rules registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		region:   "KE",
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	english := en.New()
	v.trans, _ = ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v.validate, v.trans)

	v.validate.RegisterTagNameFunc(jsonFieldName)

	_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	_ = v.validate.RegisterValidation("birthdate", v.isBirthDate)
	_ = v.validate.RegisterValidation("notpast", v.isNotPast)
	_ = v.validate.RegisterValidation("phone", v.isPhone)

	v.registerMessage("notblank", "{0} must not be blank")
	v.registerMessage("birthdate", "{0} must be a YYYY-MM-DD date that is not in the future")
	v.registerMessage("notpast", "{0} must be a valid date-time that is not in the past")
	v.registerMessage("phone", "{0} must be a valid phone number")

	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func (v *Validator) registerMessage(tag, message string) {
	_ = v.validate.RegisterTranslation(tag, v.trans,
		func(t ut.Translator) error {
			return t.Add(tag, message, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

// Now returns the validator's current time.
func (v *Validator) Now() time.Time {
	return v.now()
}

// Struct validates s and returns nil when it satisfies every rule.
func (v *Validator) Struct(s interface{}) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fe.Translate(v.trans)})
	}
	return out
}

// ParseDate parses a calendar date.
func (v *Validator) ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseTimestamp parses an appointment time in any accepted layout and
// returns it in UTC.
func (v *Validator) ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, v.loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// NormalizePhone returns the E.164 form of a phone number.
func (v *Validator) NormalizePhone(s string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(s), v.region)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q", s)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (v *Validator) isBirthDate(fl validator.FieldLevel) bool {
	d, err := v.ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	y, m, day := v.Now().In(v.loc).Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

func (v *Validator) isNotPast(fl validator.FieldLevel) bool {
	t, err := v.ParseTimestamp(fl.Field().String())
	if err != nil {
		return false
	}
	return !t.Before(v.Now())
}

// isPhone accepts an empty value so an update can clear the number.
func (v *Validator) isPhone(fl validator.FieldLevel) bool {
	if strings.TrimSpace(fl.Field().String()) == "" {
		return true
	}
	_, err := v.NormalizePhone(fl.Field().String())
	return err == nil
}

// FromDecodeError converts a JSON decoding failure into field violations.
func FromDecodeError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return Field("body", "request body must not be empty")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return Field(field, fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String()))
	case errors.As(err, &syntaxErr):
		return Field("body", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	default:
		return Field("body", err.Error())
	}
}
