package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"soiladvisor/internal/apperrors"
	"soiladvisor/internal/middleware"
	"soiladvisor/internal/models"
	"soiladvisor/internal/repository"
	"soiladvisor/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	repo  repository.UserRepository
	store sessions.Store
}

func NewAuthController(repo repository.UserRepository, store sessions.Store) *AuthController {
	return &AuthController{repo: repo, store: store}
}

type signupForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Confirm  string `form:"confirm" binding:"required"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (ac *AuthController) Home(c *gin.Context) {
	_, username, _ := middleware.CurrentUser(ac.store, c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"flashes":  middleware.TakeFlashes(ac.store, c),
		"username": username,
	})
}

func (ac *AuthController) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"flashes": middleware.TakeFlashes(ac.store, c),
	})
}

func (ac *AuthController) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.AddFlash(ac.store, c, "danger", "All fields are required.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := utils.ValidatePassword(form.Password, form.Confirm); err != nil {
		middleware.AddFlash(ac.store, c, "danger", err.Error())
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("hashing password: %v", err)
		middleware.AddFlash(ac.store, c, "danger", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	user := &models.User{Username: form.Username, Password: string(hashed)}
	if err := ac.repo.CreateUser(user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			middleware.AddFlash(ac.store, c, "danger", "Username already exists!")
		} else {
			log.Printf("creating user: %v", err)
			middleware.AddFlash(ac.store, c, "danger", "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	middleware.AddFlash(ac.store, c, "success", "Account created successfully! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": middleware.TakeFlashes(ac.store, c),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		middleware.AddFlash(ac.store, c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := ac.authenticate(form.Username, form.Password)
	if err != nil {
		middleware.AddFlash(ac.store, c, "danger", "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := middleware.SetUser(ac.store, c, user.ID, user.Username); err != nil {
		log.Printf("saving session: %v", err)
		middleware.AddFlash(ac.store, c, "danger", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	middleware.AddFlash(ac.store, c, "success", "Login successful!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// authenticate collapses a missing user and a wrong password into the same
// ErrInvalidCredentials so the login message never reveals which one failed.
func (ac *AuthController) authenticate(username, password string) (*models.User, error) {
	user, err := ac.repo.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := middleware.ClearUser(ac.store, c); err != nil {
		log.Printf("clearing session: %v", err)
	}
	middleware.AddFlash(ac.store, c, "info", "Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}
