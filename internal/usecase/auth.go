package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/SalesTrack/internal/auth"
	"github.com/GoArmGo/SalesTrack/internal/core/ports"
	"github.com/GoArmGo/SalesTrack/internal/domain"
)

// AuthUseCase определяет бизнес-логику регистрации и аутентификации
type AuthUseCase interface {
	// Register создает пользователя. Занятое имя — domain.ErrDuplicateUsername.
	Register(ctx context.Context, username, email, password string) (*domain.UserOut, error)

	// Login проверяет учетные данные и выпускает токен доступа.
	// Неизвестный пользователь и неверный пароль неразличимы:
	// оба случая — domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)

	// AuthenticateToken разбирает токен и возвращает пользователя,
	// которым ограничиваются все последующие обращения к данным.
	AuthenticateToken(ctx context.Context, token string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
}

type authUseCase struct {
	users  ports.UserStorage
	issuer *auth.TokenIssuer
	logger *slog.Logger
}

func NewAuthUseCase(users ports.UserStorage, issuer *auth.TokenIssuer, logger *slog.Logger) AuthUseCase {
	return &authUseCase{users: users, issuer: issuer, logger: logger}
}

func (uc *authUseCase) Register(ctx context.Context, username, email, password string) (*domain.UserOut, error) {
	existing, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка проверки имени пользователя: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
	}

	user := &domain.User{Username: username, Email: email, Password: hash}
	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: ошибка создания пользователя: %w", err)
	}

	uc.logger.Info("user registered", "username", username)

	// хэш пароля наружу не отдается
	return &domain.UserOut{Username: user.Username, Email: user.Email}, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка поиска пользователя: %w", err)
	}
	if user == nil || !auth.VerifyPassword(password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.issuer.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "username", username)
	return token, nil
}

func (uc *authUseCase) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	subject, err := uc.issuer.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := uc.users.GetUserByUsername(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка поиска пользователя по токену: %w", err)
	}
	if user == nil {
		// пользователь исчез после выпуска токена
		return nil, domain.ErrUnauthenticated
	}

	return user, nil
}

func (uc *authUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения списка пользователей: %w", err)
	}
	return users, nil
}
