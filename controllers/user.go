package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

// UserController backs the /admin/users screens.
type UserController struct {
	Base
}

func (u UserController) List(c *gin.Context) {
	s, _ := utils.GetSession(c)

	users, err := u.Client.ListUsers(c.Request.Context(), s.Token)
	if err != nil {
		u.fail(c, err, "users.html", gin.H{"Users": []models.User{}})
		return
	}
	u.render(c, http.StatusOK, "users.html", gin.H{
		"Users":   users,
		"Message": c.Query("msg"),
	})
}

func (u UserController) NewForm(c *gin.Context) {
	u.render(c, http.StatusOK, "user_form.html", gin.H{"Input": models.UserInput{IsActive: true}})
}

func (u UserController) Create(c *gin.Context) {
	s, _ := utils.GetSession(c)

	input := parseUserForm(c)
	if errs := input.Validate(true); len(errs) > 0 {
		u.render(c, http.StatusBadRequest, "user_form.html", gin.H{"Input": input, "Errors": errs})
		return
	}

	if _, err := u.Client.CreateUser(c.Request.Context(), s.Token, input); err != nil {
		if u.expireSession(c, err) {
			return
		}
		u.render(c, http.StatusOK, "user_form.html", gin.H{"Input": input, "Banner": errorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users?msg=User+created")
}

func (u UserController) EditForm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	user, err := u.Client.GetUser(c.Request.Context(), s.Token, id)
	if err != nil {
		u.fail(c, err, "users.html", gin.H{"Users": []models.User{}})
		return
	}
	input := models.UserInput{
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		BusinessID: user.BusinessID,
		IsActive:   user.IsActive,
	}
	u.render(c, http.StatusOK, "user_form.html", gin.H{"Input": input, "EditID": id})
}

func (u UserController) Update(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	input := parseUserForm(c)
	if errs := input.Validate(false); len(errs) > 0 {
		u.render(c, http.StatusBadRequest, "user_form.html", gin.H{"Input": input, "EditID": id, "Errors": errs})
		return
	}

	if _, err := u.Client.UpdateUser(c.Request.Context(), s.Token, id, input); err != nil {
		if u.expireSession(c, err) {
			return
		}
		u.render(c, http.StatusOK, "user_form.html", gin.H{"Input": input, "EditID": id, "Banner": errorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users?msg=User+updated")
}

func (u UserController) DeleteConfirm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	user, err := u.Client.GetUser(c.Request.Context(), s.Token, id)
	if err != nil {
		u.fail(c, err, "users.html", gin.H{"Users": []models.User{}})
		return
	}
	u.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"What":       "user",
		"Name":       user.Email,
		"ActionPath": "/admin/users/" + id + "/delete",
		"BackLink":   "/admin/users",
	})
}

func (u UserController) Delete(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}

	if err := u.Client.DeleteUser(c.Request.Context(), s.Token, id); err != nil {
		u.fail(c, err, "users.html", gin.H{"Users": []models.User{}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users?msg=User+deleted")
}

func parseUserForm(c *gin.Context) models.UserInput {
	return models.UserInput{
		Email:      strings.TrimSpace(c.PostForm("email")),
		Name:       strings.TrimSpace(c.PostForm("name")),
		Role:       c.PostForm("role"),
		BusinessID: strings.TrimSpace(c.PostForm("business_id")),
		IsActive:   c.PostForm("is_active") != "",
		Password:   c.PostForm("password"),
	}
}
