package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
)

const (
	// RoleOrganizador é o único papel emitido hoje.
	RoleOrganizador = "organizador"

	// TokenTTLPadrao é a validade padrão do token de acesso.
	TokenTTLPadrao = 24 * time.Hour
	// TokenTTLLembrar é a validade estendida do login "lembrar de mim".
	TokenTTLLembrar = 7 * 24 * time.Hour
)

// TokenClaims é o conteúdo verificado de um token de acesso.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// GooglePayload são os dados extraídos de um token de identidade do Google.
type GooglePayload struct {
	Email string
	Nome  string
}

type TokenService interface {
	Issue(userID uuid.UUID, role string, ttl time.Duration) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
	// Refresh emite um novo token de 1 dia a partir de um token existente.
	// As claims são lidas SEM validar a assinatura, por compatibilidade com
	// os clientes atuais; expiração e subject ainda são verificados.
	Refresh(tokenString string) (string, error)
	VerifyGoogleToken(ctx context.Context, idToken, clientID string) (*GooglePayload, error)
}

type tokenService struct {
	secret []byte
}

// NewTokenService cria o serviço de tokens com a chave simétrica injetada.
func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret)}
}

func (s *tokenService) Issue(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNaoAutorizado
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNaoAutorizado
	}
	return parseTokenClaims(claims)
}

func (s *tokenService) Refresh(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", ErrNaoAutorizado
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNaoAutorizado
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return "", ErrNaoAutorizado
	}

	parsed, err := parseTokenClaims(claims)
	if err != nil {
		return "", ErrNaoAutorizado
	}

	return s.Issue(parsed.UserID, RoleOrganizador, TokenTTLPadrao)
}

func (s *tokenService) VerifyGoogleToken(ctx context.Context, rawToken, clientID string) (*GooglePayload, error) {
	payload, err := idtoken.Validate(ctx, rawToken, clientID)
	if err != nil {
		// Qualquer falha de validação (rede, assinatura, audience) é
		// tratada como token inválido.
		return nil, ErrTokenGoogleInvalido
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrTokenGoogleInvalido
	}

	nome, _ := payload.Claims["name"].(string)
	if nome == "" {
		nome = email
	}

	return &GooglePayload{Email: email, Nome: nome}, nil
}

func parseTokenClaims(claims jwt.MapClaims) (*TokenClaims, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrNaoAutorizado
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrNaoAutorizado
	}

	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: userID, Role: role}, nil
}
