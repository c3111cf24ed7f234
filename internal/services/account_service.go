package services

import (
	"context"

	"github.com/google/uuid"
	"tripflow/internal/models/db_models"
	"tripflow/internal/models/request_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error)
	UpdateInterests(ctx context.Context, userID string, interests []string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrAccountAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrInvalidInput
	}

	currency := req.HomeCurrency
	if currency == "" {
		currency = "USD"
	}

	account := &db_models.Account{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		HomeCurrency: currency,
	}
	if err := a.accountRepo.Create(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:           account.ID.String(),
		DisplayName:  account.DisplayName,
		Email:        account.Email,
		HomeCurrency: account.HomeCurrency,
		Interests:    account.Interests,
	}, nil
}

func (a *AccountService) UpdateInterests(ctx context.Context, userID string, interests []string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := a.accountRepo.UpdateInterests(ctx, id, interests); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
