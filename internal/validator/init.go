package validator

import (
	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "mark" accepts X or O in either case.
	if err := validate.RegisterValidation("mark", validateMark); err != nil {
		panic(err)
	}
}

func validateMark(fl validator.FieldLevel) bool {
	_, err := game.ParseMark(fl.Field().String())
	return err == nil
}

func GetValidator() *validator.Validate {
	return validate
}
