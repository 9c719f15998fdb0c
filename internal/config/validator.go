package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("origin", isHTTPOrigin); err != nil {
		return nil, nil, fmt.Errorf("failed to register origin validation: %w", err)
	}
	if err := validate.RegisterTranslation("origin", trans, func(ut ut.Translator) error {
		return ut.Add("origin", "{0} must be an absolute http or https origin", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("origin", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register origin translation: %w", err)
	}

	return validate, trans, nil
}

func isHTTPOrigin(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	// An origin is scheme://host[:port] with nothing after it.
	return u.Host != "" && u.Path == "" && u.RawQuery == "" && u.Fragment == ""
}
