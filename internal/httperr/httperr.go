package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// StatusFor mapeia a categoria de negócio para o status HTTP.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidFormat, KindInvalidTimeRange, KindEmptyCollection:
		return http.StatusBadRequest
	case KindInvalidState:
		return http.StatusConflict
	case KindMissingCollaborator, KindInactiveCollaborator, KindBatchPartialMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[Kind]string{
	KindNotFound:             "Registro não encontrado.",
	KindInvalidFormat:        "Formato inválido.",
	KindInvalidTimeRange:     "Horário inicial deve ser anterior ao final.",
	KindInvalidState:         "Operação não permitida no estado atual.",
	KindMissingCollaborator:  "Serviço sem colaborador atribuído.",
	KindInactiveCollaborator: "Colaborador inativo.",
	KindEmptyCollection:      "Nenhum item informado.",
	KindBatchPartialMismatch: "Alguns registros não foram encontrados.",
}

// FromError escreve a resposta para qualquer erro vindo dos use cases.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		logrus.WithError(err).
			WithField("path", c.FullPath()).
			Error("unexpected error")
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	c.JSON(StatusFor(be.Kind), HTTPError{
		Code:    be.Code,
		Kind:    be.Kind,
		Message: messages[be.Kind],
	})
}
