package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/taigram/docs-theme/internal/i18n"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func siteValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// "locale" accepts only locales that have a translation table.
		_ = validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			return i18n.IsSupported(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the site configuration. Every failure wraps
// ErrInvalidConfig.
func (c *SiteConfig) Validate() error {
	err := siteValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "locale":
			msgs = append(msgs, fmt.Sprintf("%s %q is not supported (supported: %s)",
				fe.Field(), fe.Value(), strings.Join(i18n.Supported(), ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
