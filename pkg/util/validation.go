package util

import (
	"errors"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

func initValidator() {
	validate = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct checks the `validate` tags of s. Failures are returned as an ErrBadParamInput
// error whose message lists every violated rule in English.
func ValidateStruct(s interface{}) error {
	validatorOnce.Do(initValidator)

	if err := validate.Struct(s); err != nil {
		vv := TranslateError(err)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return WrapErrorf(nil, ErrBadParamInput, "validation error: %v", vvString)
	}
	return nil
}

func TranslateError(err error) []error {
	validatorOnce.Do(initValidator)
	if err == nil {
		return nil
	}

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(translator)))
	}
	return errs
}
