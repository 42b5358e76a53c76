package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// validationErrors переводит ошибки binding в массив {msg, param}
func validationErrors(err error, messages map[string]string) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := strings.ToLower(fe.Field())
		msg, ok := messages[param]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{Msg: msg, Param: param})
	}
	return out
}

// serverError логирует причину и отвечает 500
func serverError(c *gin.Context, err error) {
	log.Println(err.Error())
	c.String(http.StatusInternalServerError, "Server Error")
}
