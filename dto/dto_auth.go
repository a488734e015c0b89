package dto

import "github.com/NazirHussain1/inkwell-backend/model"

type SignupReq struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Bio      string `json:"bio"      validate:"max=500"`
}

type LoginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResp struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}
