package controllers

import (
	"errors"
	"net/http"
	"wordquest/app/dto"
	"wordquest/app/middleware"
	"wordquest/app/services"
	"wordquest/app/session"
	"wordquest/app/web"
)

type PageController struct {
	Accounts *services.AccountService
	Sessions *session.Store
	Pages    *web.Renderer
}

func NewPageController(accounts *services.AccountService, sessions *session.Store, pages *web.Renderer) *PageController {
	return &PageController{Accounts: accounts, Sessions: sessions, Pages: pages}
}

func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	c.Pages.Render(w, "index.html", web.PageData{})
}

func (c *PageController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.Pages.Render(w, "signup.html", web.PageData{})
		return
	}
	req, err := dto.ParseSignupForm(r)
	if err != nil {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if _, err := c.Accounts.Create(req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	c.Pages.Render(w, "signup_success.html", web.PageData{})
}

func (c *PageController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.Pages.Render(w, "login.html", web.PageData{Flashes: session.PopFlashes(w, r)})
		return
	}
	req, err := dto.ParseLoginForm(r)
	if err == nil {
		user, verr := c.Accounts.Verify(req.Email, req.Password)
		if verr == nil {
			if serr := c.Sessions.Establish(w, user.ID); serr != nil {
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			c.Pages.Render(w, "login_success.html", web.PageData{})
			return
		}
	}
	// Single message for unknown email, wrong password and missing fields.
	session.SetFlash(w, "error", "Incorrect email or password.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (c *PageController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (c *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	user, err := c.Accounts.Get(uid)
	if err != nil {
		// Account deleted while the session was still live.
		c.Sessions.Clear(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	c.Pages.Render(w, "dashboard.html", web.PageData{Fullname: user.Fullname})
}
