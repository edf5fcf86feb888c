package utils

import (
	"errors"
	"reflect"
	"strings"

	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	jsonTagName    = "json"
	emptyTagName   = "-"
	subString      = 2
	messageJoinSep = "; "
)

// ConfigureValidator names fields by their json tag and registers english messages.
// The returned translator renders binding failures for API callers.
func ConfigureValidator(validate *validator.Validate) (ut.Translator, error) {
	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", subString)[0]
		if name == emptyTagName {
			return fld.Name
		}
		return name
	})
	return trans, nil
}

// BindingErr converts a binding error into the API error returned to the caller.
// Validation failures are listed per field, anything else is reported against what.
func BindingErr(err error, trans ut.Translator, what string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.InvalidInReqErr(what)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return errs.New(strings.Join(msgs, messageJoinSep))
}
