package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/internal/config"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	// Login valida a senha do operador e retorna um token JWT
	Login(password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret       []byte
	passwordHash []byte
	tokenTTL     time.Duration
	now          func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	if cfg.Auth.OperatorPasswordHash == "" {
		logrus.Warn("AUTH_OPERATOR_PASSWORD_HASH não configurado, login de operador desabilitado")
	}

	return &Service{
		secret:       []byte(cfg.Auth.Secret),
		passwordHash: []byte(cfg.Auth.OperatorPasswordHash),
		tokenTTL:     cfg.Auth.TokenTTL,
		now:          time.Now,
	}
}

func (s *Service) Login(password string) (string, error) {
	if len(s.passwordHash) == 0 {
		return "", NewAuthError(ErrLoginDisabled, apiErrors.ErrInvalidCredentials, "")
	}

	if password == "" {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "senha é obrigatória")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "senha incorreta")
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT() (string, error) {
	now := s.now()
	claims := domain.Claims{
		Role: domain.RoleOperator,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
