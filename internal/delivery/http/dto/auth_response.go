package dto

import (
	"breneo/internal/domain/user"
	"breneo/internal/usecase"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type SessionResponse struct {
	User user.User `json:"user"`
	TokenResponse
}

func NewTokenResponse(p usecase.TokenPair) TokenResponse {
	return TokenResponse{TokenType: "Bearer", AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func NewSessionResponse(s usecase.Session) SessionResponse {
	return SessionResponse{User: s.User, TokenResponse: NewTokenResponse(s.Tokens)}
}
