package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/incident-intake/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В деталях ошибок используем имена полей из JSON, а не из Go
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры, возвращает *errors.AppError с деталями по полям
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewValidation(err.Error())
	}

	details := make(map[string]interface{}, len(fieldErrs))
	var first string
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = rule + "=" + fe.Param()
		}
		details[field] = rule
		if first == "" {
			first = fmt.Sprintf("%s failed on '%s'", field, rule)
		}
	}

	return errors.NewValidation(first).WithDetails(details)
}

// fieldPath отрезает имя корневой структуры: "Req.location.coordinates" -> "location.coordinates"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
