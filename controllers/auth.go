package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/platform"
	"github.com/aamagency-dev/sms-frontend/utils"
)

type AuthController struct {
	Base
}

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

func (a AuthController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

func (a AuthController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
			"Email": c.PostForm("email"),
		})
		return
	}

	token, err := a.Client.Login(c.Request.Context(), platform.Credentials{
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": errorMessage(err),
			"Email": form.Email,
		})
		return
	}

	utils.SetSessionCookie(c, token, 24*3600, a.Cfg.SecureCookies)
	c.Redirect(http.StatusSeeOther, "/")
}

func (a AuthController) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Name": "", "Email": ""})
}

func (a AuthController) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "All fields are required; passwords need at least 8 characters",
			"Name":  c.PostForm("name"),
			"Email": c.PostForm("email"),
		})
		return
	}

	token, err := a.Client.Register(c.Request.Context(), platform.RegisterInput{
		Name:     form.Name,
		Email:    strings.TrimSpace(form.Email),
		Password: form.Password,
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": errorMessage(err),
			"Name":  form.Name,
			"Email": form.Email,
		})
		return
	}

	utils.SetSessionCookie(c, token, 24*3600, a.Cfg.SecureCookies)
	c.Redirect(http.StatusSeeOther, "/")
}

func (a AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, a.Cfg.SecureCookies)
	c.Redirect(http.StatusSeeOther, "/login")
}

// SessionMiddleware hydrates the session from the token cookie via
// /auth/me and injects it into the request context. Missing, expired or
// rejected tokens clear the cookie and redirect to /login exactly once.
func (a AuthController) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.TokenFromRequest(c)
		if token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if utils.TokenExpired(token, time.Now()) {
			utils.ClearSessionCookie(c, a.Cfg.SecureCookies)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := a.Client.Me(c.Request.Context(), token)
		if err != nil {
			if a.expireSession(c, err) {
				return
			}
			c.HTML(http.StatusBadGateway, "error.html", gin.H{"Error": errorMessage(err)})
			c.Abort()
			return
		}

		utils.SetSession(c, utils.Session{
			Token: token,
			User: utils.SessionUser{
				ID:      user.ID,
				Email:   user.Email,
				Name:    user.Name,
				Role:    user.Role,
				IsAdmin: user.Role == "admin",
			},
		})
		c.Next()
	}
}

// RequireAdmin gates the /admin screens on the hydrated session role.
func (a AuthController) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := utils.GetSession(c)
		if !ok || !s.User.IsAdmin {
			c.HTML(http.StatusForbidden, "error.html", gin.H{"Error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
