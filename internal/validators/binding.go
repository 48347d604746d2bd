package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Register adiciona as tags `hhmm` e `civildate` ao validator do gin.
// Campos vazios passam; use `required` junto quando obrigatório.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("hhmm", isClock); err != nil {
		return err
	}
	return v.RegisterValidation("civildate", isCivilDate)
}

func isClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || appointment.IsClock(s)
}

func isCivilDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || timezone.IsCivilDate(s)
}
