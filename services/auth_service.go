package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/repositories"
)

// resetTokenTTL é a validade do token de recuperação de senha.
const resetTokenTTL = 24 * time.Hour

type RegisterInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileView é o perfil do usuário autenticado retornado pela API.
type ProfileView struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	ContaGoogle bool   `json:"contaGoogle"`
	Codigo      string `json:"codigo"`
}

type AuthService interface {
	// RegisterOrganizador cria o usuário e o organizador associado, com um
	// código de convite único.
	RegisterOrganizador(ctx context.Context, input RegisterInput) (*models.Organizador, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	// LoginGoogle retorna o usuário da conta federada, criando usuário e
	// organizador no primeiro acesso.
	LoginGoogle(ctx context.Context, payload *GooglePayload) (*models.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, senhaAtual, novaSenha string) error
	UpdateNome(ctx context.Context, userID uuid.UUID, nome string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, novaSenha string) error
}

type authService struct {
	userRepo        repositories.UserRepository
	organizadorRepo repositories.OrganizadorRepository
	emailService    *EmailService
	logger          *slog.Logger
	frontendURL     string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	organizadorRepo repositories.OrganizadorRepository,
	emailService *EmailService,
	logger *slog.Logger,
	frontendURL string,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		organizadorRepo: organizadorRepo,
		emailService:    emailService,
		logger:          logger,
		frontendURL:     frontendURL,
	}
}

func (s *authService) RegisterOrganizador(ctx context.Context, input RegisterInput) (*models.Organizador, error) {
	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Nome:         input.Nome,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Ativo:        true,
		ContaGoogle:  false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	organizador, err := s.createOrganizador(ctx, user.ID, input.Nome)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go func() {
			if err := s.emailService.SendWelcomeEmail(user.Email, user.Nome); err != nil {
				s.logger.Error("falha ao enviar email de boas-vindas", slog.Any("error", err))
			}
		}()
	}

	return organizador, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrCredenciaisInvalidas
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) LoginGoogle(ctx context.Context, payload *GooglePayload) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, payload.Email)
	if err == nil {
		user.PasswordHash = ""
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	// Primeiro acesso: cria usuário com senha aleatória e o organizador.
	hashedPassword, err := HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user = &models.User{
		ID:           uuid.New(),
		Nome:         payload.Nome,
		Email:        payload.Email,
		PasswordHash: hashedPassword,
		Ativo:        true,
		ContaGoogle:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			// Outro login concorrente criou o usuário; usa o existente.
			return s.userRepo.GetByEmail(ctx, payload.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.createOrganizador(ctx, user.ID, payload.Nome); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	codigo := ""
	organizador, err := s.organizadorRepo.GetActiveByUserID(ctx, userID)
	if err == nil {
		codigo = organizador.Codigo
	} else if !errors.Is(err, repositories.ErrOrganizadorNotFound) {
		return nil, err
	}

	return &ProfileView{
		Nome:        user.Nome,
		Email:       user.Email,
		ContaGoogle: user.ContaGoogle,
		Codigo:      codigo,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, senhaAtual, novaSenha string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Contas Google não têm senha conhecida; a verificação da senha atual
	// só vale para contas com senha própria.
	if !user.ContaGoogle {
		if senhaAtual == "" {
			return ErrSenhaAtualObrigatoria
		}
		if !CheckPassword(senhaAtual, user.PasswordHash) {
			return ErrSenhaAtualInvalida
		}
	}

	if novaSenha == "" {
		return ErrNovaSenhaObrigatoria
	}

	hashedPassword, err := HashPassword(novaSenha)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	// Depois de definir uma senha, a conta deixa de ser puramente Google.
	user.ContaGoogle = false

	return s.userRepo.Update(ctx, user)
}

func (s *authService) UpdateNome(ctx context.Context, userID uuid.UUID, nome string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrNotFound
		}
		return err
	}

	user.Nome = nome
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	// O nome do organizador acompanha o do usuário.
	organizador, err := s.organizadorRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorNotFound) {
			return nil
		}
		return err
	}
	return s.organizadorRepo.UpdateNome(ctx, organizador.ID, nome)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Não revelamos se o email está cadastrado.
			return nil
		}
		return err
	}

	resetToken := uuid.NewString()
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetPasswordToken = &resetToken
	user.ResetPasswordTokenExpiry = &expiry

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to persist reset token: %w", err)
	}

	if s.emailService != nil {
		resetLink := fmt.Sprintf("%s/redefinir-senha?token=%s", s.frontendURL, resetToken)
		go func() {
			if err := s.emailService.SendPasswordRecoveryEmail(user.Email, resetLink); err != nil {
				// Falha de envio não falha a requisição.
				s.logger.Error("falha ao enviar email de recuperação", slog.Any("error", err))
			}
		}()
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, novaSenha string) error {
	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrTokenInvalido
		}
		return err
	}

	if user.ResetPasswordTokenExpiry == nil || user.ResetPasswordTokenExpiry.Before(time.Now()) {
		return ErrTokenInvalido
	}

	hashedPassword, err := HashPassword(novaSenha)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Token de uso único: limpo junto com a troca de senha.
	user.PasswordHash = hashedPassword
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpiry = nil

	return s.userRepo.Update(ctx, user)
}

func (s *authService) createOrganizador(ctx context.Context, userID uuid.UUID, nome string) (*models.Organizador, error) {
	codigo, err := generateUniqueCodigo(ctx, s.organizadorRepo)
	if err != nil {
		return nil, err
	}

	organizador := &models.Organizador{
		UserID: userID,
		Nome:   nome,
		Codigo: codigo,
		Ativo:  true,
	}

	if err := s.organizadorRepo.Create(ctx, organizador); err != nil {
		return nil, fmt.Errorf("failed to create organizador: %w", err)
	}
	return organizador, nil
}
