package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"wordquest/app/services"
	"wordquest/app/session"
	"wordquest/app/web"
)

type AdminController struct {
	Accounts *services.AccountService
	Words    *services.WordBankService
	Pages    *web.Renderer
}

func NewAdminController(accounts *services.AccountService, words *services.WordBankService, pages *web.Renderer) *AdminController {
	return &AdminController{Accounts: accounts, Words: words, Pages: pages}
}

func (c *AdminController) Panel(w http.ResponseWriter, r *http.Request) {
	users, err := c.Accounts.ListAll()
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	words, err := c.Words.ListOrdered()
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	c.Pages.Render(w, "admin.html", web.PageData{
		Flashes: session.PopFlashes(w, r),
		Users:   users,
		Words:   words,
	})
}

// AddWord never fails the request: bad input and duplicates flash a warning
// and bounce back to the panel.
func (c *AdminController) AddWord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	text, err := c.Words.Add(r.FormValue("text"), r.FormValue("level"))
	switch {
	case err == nil:
		session.SetFlash(w, "success", fmt.Sprintf("Added word %s", text))
	case errors.Is(err, services.ErrDuplicateWord):
		session.SetFlash(w, "warning", "That word already exists")
	case errors.Is(err, services.ErrInvalidWord):
		session.SetFlash(w, "warning", "A word and a valid level are required")
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (c *AdminController) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	word, err := c.Words.Delete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	session.SetFlash(w, "info", fmt.Sprintf("Deleted %s", word.Text))
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	user, err := c.Accounts.Delete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	session.SetFlash(w, "info", fmt.Sprintf("Removed user %s", user.Fullname))
	http.Redirect(w, r, "/admin", http.StatusFound)
}
