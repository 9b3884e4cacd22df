package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/workhive/workhive-backend-go/internal/domain/auth"
	"github.com/workhive/workhive-backend-go/internal/domain/employee"
	"github.com/workhive/workhive-backend-go/internal/pkg/database"
	"github.com/workhive/workhive-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same error as a wrong PIN so login probes can't enumerate codes.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	if !emp.Active {
		return auth.LoginResponse{}, employee.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PINHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.CompanyID, emp.Code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
