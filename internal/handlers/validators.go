package handlers

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the domain enum tags used in dto binding rules.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCurrency(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseTransactionType(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("txstatus", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseStatus(fl.Field().String())
		return ok
	})
}
