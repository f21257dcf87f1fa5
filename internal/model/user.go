package model

import "github.com/golang-jwt/jwt/v5"

const AdminRole = "admin"

type UserInfo struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthClaims struct {
	jwt.RegisteredClaims

	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
