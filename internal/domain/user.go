package domain

import "time"

type User struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

type Registration struct {
	Name     string
	Email    string
	Password string
}

// LoginResult é o resultado de um login bem-sucedido
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        User
}
