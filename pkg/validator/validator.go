package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Reporta os campos pelo nome JSON, que é o que o cliente enviou.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida a struct e devolve um único erro com todas as mensagens
// reunidas em um texto legível, separadas por vírgula.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return errors.New(strings.Join(msgs, ", "))
}

// message traduz um FieldError em mensagem para o cliente. O campo group
// mantém os textos históricos do produto.
func message(fe validator.FieldError) string {
	if fe.Field() == "group" {
		switch fe.Tag() {
		case "required":
			return "Você não tem permissão para realizar está ação!"
		case "oneof":
			return "Erro, consulte ao administrador do sistema"
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo %s é obrigatório", fe.Field())
	case "email":
		return fmt.Sprintf("o campo %s deve ser um e-mail válido", fe.Field())
	case "oneof":
		return fmt.Sprintf("o campo %s deve ser um de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("o campo %s é inválido", fe.Field())
	}
}
