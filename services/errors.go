package services

import "errors"

// Erros comuns usados pelos serviços e pelo mapeamento HTTP. As mensagens
// são exibidas ao usuário final, por isso em português.
var (
	// Recurso não encontrado (universal)
	ErrNotFound = errors.New("recurso não encontrado")

	// Autenticação e autorização
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrNaoAutorizado        = errors.New("não autorizado")

	// Validação e regras de negócio
	ErrNomeObrigatorio       = errors.New("nome é obrigatório")
	ErrNovaSenhaObrigatoria  = errors.New("nova senha é obrigatória")
	ErrSenhaAtualObrigatoria = errors.New("senha atual é obrigatória")
	ErrSenhaAtualInvalida    = errors.New("senha atual inválida")
	ErrCodigoObrigatorio     = errors.New("código do organizador é obrigatório")
	ErrCodigoInvalido        = errors.New("código de organizador inválido")
	ErrTokenInvalido         = errors.New("token inválido ou expirado")
	ErrTokenGoogleInvalido   = errors.New("token do Google inválido")
	ErrClientIDObrigatorio   = errors.New("client ID do Google é obrigatório")
	ErrMesmosTimes           = errors.New("o time da casa e o visitante devem ser diferentes")

	// Conflitos
	ErrEmailJaCadastrado      = errors.New("email já cadastrado")
	ErrCodigoEmUso            = errors.New("este código já está em uso")
	ErrJogadorDuplicadoNoTime = errors.New("jogador escalado mais de uma vez no mesmo time")
)
