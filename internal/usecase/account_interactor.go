package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type accountUseCase struct {
	users      ports.UserStorage
	categories ports.CategoryStorage
	resolver   LocationResolver
	validate   *validator.Validate
	cost       int
	logger     *slog.Logger
}

// NewAccountUseCase создает новый экземпляр AccountUseCase
func NewAccountUseCase(
	users ports.UserStorage,
	categories ports.CategoryStorage,
	resolver LocationResolver,
	validate *validator.Validate,
	logger *slog.Logger,
) AccountUseCase {
	return &accountUseCase{
		users:      users,
		categories: categories,
		resolver:   resolver,
		validate:   validate,
		cost:       bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Register создает пользователя, профиль фотографа и первый адрес.
// При ошибке валидации ничего не сохраняется.
func (uc *accountUseCase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse(time.DateOnly, in.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("usecase: parse birth date: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("usecase: hash password: %w", err)
	}

	var categories []domain.Category
	if len(in.Categories) > 0 {
		categories, err = uc.categories.ResolveCategories(ctx, in.Categories)
		if err != nil {
			return nil, fmt.Errorf("usecase: resolve categories: %w", err)
		}
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	photographer := &domain.Photographer{
		CompanyName:  in.CompanyName,
		Website:      in.Website,
		PhoneNumber:  in.PhoneNumber,
		MobileNumber: in.MobileNumber,
		VATNumber:    in.VATNumber,
		BirthDate:    birthDate,
		NewsLetter:   in.NewsLetter,
		Status:       domain.StatusActive,
		Categories:   categories,
	}
	location := &domain.Location{
		ZipCode: in.Address.ZipCode,
		Country: in.Address.Country,
		State:   in.Address.State,
		City:    in.Address.City,
		Street:  in.Address.Street,
		Point:   uc.resolver.Resolve(ctx, in.Address),
	}

	if err := uc.users.CreateAccount(ctx, user, photographer, location); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			verr := domain.NewValidationError()
			verr.Add("username", "A user with that username already exists.")
			return nil, verr
		}
		return nil, fmt.Errorf("usecase: create account: %w", err)
	}
	uc.resolver.AfterSave(ctx, location)

	uc.logger.Info("photographer registered",
		"user_id", user.ID,
		"photographer_id", photographer.ID,
		"has_point", location.HasPoint(),
	)
	return user, nil
}

func (uc *accountUseCase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("usecase: get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.logger.Warn("failed login attempt", "username", username)
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
