package league

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/league-pages/internal/timeutil"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("league", func(fl validator.FieldLevel) bool {
		return League(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("matchdate", func(fl validator.FieldLevel) bool {
		_, err := timeutil.ParseMatchDate(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the dataset shape. Team references from matches are not
// checked; unknown names render without a logo.
func (d Dataset) Validate() error {
	for i, e := range d.Schedule {
		if err := e.check(); err != nil {
			return fmt.Errorf("invalid league dataset: schedule[%d]: %w", i, err)
		}
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid league dataset: %w", err)
	}
	return nil
}
