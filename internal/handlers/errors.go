package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dapperagenda/barber-api/internal/httperr"
)

// respondUsecaseError translates a use-case failure into an HTTP reply.
// Business rejections map by code; anything else is a 500.
func respondUsecaseError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	message := be.Message
	if message == "" {
		message = defaultBusinessMessage(be.Code)
	}

	switch {
	case be.Code == "scheduling_conflict":
		httperr.Conflict(c, be.Code, message)
	case strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, message)
	default:
		httperr.BadRequest(c, be.Code, message)
	}
}

func defaultBusinessMessage(code string) string {
	switch code {
	case "unit_not_found":
		return "Unidade não encontrada."
	case "barber_not_found":
		return "Barbeiro não encontrado."
	case "service_not_found":
		return "Serviço não encontrado."
	case "client_not_found":
		return "Cliente não encontrado."
	case "appointment_not_found":
		return "Agendamento não encontrado."
	case "invalid_date_or_time":
		return "Data ou horário inválido."
	case "invalid_date":
		return "Data inválida."
	case "invalid_status":
		return "Status inválido."
	default:
		return "Solicitação inválida."
	}
}
