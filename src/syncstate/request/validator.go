package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	err := v.RegisterValidation("blockroot", func(fl validator.FieldLevel) bool {
		return IsBlockRoot(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}
