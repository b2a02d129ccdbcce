package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	// Recuperação de senha (token opaco de uso único).
	ResetPasswordToken       *string    `json:"-"`
	ResetPasswordTokenExpiry *time.Time `json:"-"`

	Ativo       bool      `json:"ativo"`
	ContaGoogle bool      `json:"contaGoogle"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}
