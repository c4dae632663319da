package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"forecastapi.app/internal/core/forecast"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerValidators adds the custom tags used by request structs to gin's validator
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("unit", validateUnit)
	})
	return registerErr
}

// validateUnit accepts every spelling forecast.ParseUnit understands
func validateUnit(fl validator.FieldLevel) bool {
	_, err := forecast.ParseUnit(fl.Field().String())
	return err == nil
}
