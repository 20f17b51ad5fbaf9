package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			name := strings.TrimSpace(fl.Field().String())
			if name == "" {
				return true
			}
			_, err := zerolog.ParseLevel(strings.ToLower(name))
			return err == nil
		})

		_ = v.RegisterValidation("guifont", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.TrimSpace(value) == "" {
				return true
			}
			_, err := font.Parse(value)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the loaded configuration against its struct rules.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	fe := ves[0]
	field := strings.ToLower(strings.TrimPrefix(fe.StructNamespace(), "Config."))
	if fe.Param() != "" {
		return fmt.Errorf("%s failed validation for tag '%s=%s' (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s failed validation for tag '%s' (got %v)", field, fe.Tag(), fe.Value())
}
