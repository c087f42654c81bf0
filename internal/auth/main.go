package auth

import (
	"net/http"

	"salledispo.app/internal/models"
)

type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
	TemplateAccess(next http.HandlerFunc) http.HandlerFunc
	CurrentUser(r *http.Request) *models.User
	SignOut(accessToken string) (*http.Cookie, *http.Cookie, error)
}
