package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// accountCodePattern matches dot-segmented hierarchical codes like "1.1.04.02".
var accountCodePattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// validAccountCode implements the "accountcode" binding rule.
func validAccountCode(fl validator.FieldLevel) bool {
	return accountCodePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers domain-specific binding rules with gin's
// validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("accountcode", validAccountCode)
}
