package domain

import "github.com/golang-jwt/jwt/v5"

const RoleOperator = "operator"

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
