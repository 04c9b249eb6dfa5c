package handler

import apperrors "labadmin/internal/errors"

// User-facing texts. The front-end pages display these verbatim.
const (
	msgServerError      = "Erro no servidor"
	msgLoginRequired    = "Usuário e senha são obrigatórios"
	msgInvalidLogin     = "Credenciais inválidas"
	msgNotLoggedIn      = "Usuário não logado"
	msgLogoutFailed     = "Erro ao fazer logout"
	msgAllFieldsMissing = "Todos os campos são obrigatórios"

	msgUserCreated = "Usuário adicionado com sucesso"
	msgUserDeleted = "Usuário removido com sucesso"

	msgProductCreated  = "Produto adicionado com sucesso"
	msgProductDeleted  = "Produto removido com sucesso"
	msgProductNotFound = "Produto não encontrado"

	msgLaboratoryRequired     = "Nome do laboratório e email do usuário são obrigatórios."
	msgLaboratoryCreated      = "Laboratório adicionado com sucesso!"
	msgLaboratoryCreateFailed = "Erro ao adicionar laboratório"
	msgLaboratoryDeleted      = "Laboratório removido com sucesso!"
	msgLaboratoryDeleteFailed = "Erro ao remover laboratório"
)

var (
	loginMessages = apperrors.Messages{
		Validation:   msgLoginRequired,
		Unauthorized: msgInvalidLogin,
		Internal:     msgServerError,
	}
	currentUserMessages = apperrors.Messages{
		Unauthorized: msgNotLoggedIn,
		Internal:     msgServerError,
	}
	crudMessages = apperrors.Messages{
		Validation: msgAllFieldsMissing,
		NotFound:   msgProductNotFound,
		Internal:   msgServerError,
	}
)
