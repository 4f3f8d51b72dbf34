package dto

import "net/http"

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

func ParseSignupForm(r *http.Request) (SignupRequest, error) {
	if err := r.ParseForm(); err != nil {
		return SignupRequest{}, err
	}
	req := SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return req, ErrMissingFields
	}
	return req, nil
}

type LoginRequest struct {
	Email    string
	Password string
}

func ParseLoginForm(r *http.Request) (LoginRequest, error) {
	if err := r.ParseForm(); err != nil {
		return LoginRequest{}, err
	}
	req := LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if req.Email == "" || req.Password == "" {
		return req, ErrMissingFields
	}
	return req, nil
}
