package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumberjack100/app-remote-config-site-backend/auth"
	"github.com/Lumberjack100/app-remote-config-site-backend/models"
	"github.com/Lumberjack100/app-remote-config-site-backend/store"
)

// AuthController handles sign-in and token introspection.
type AuthController struct {
	Users  *store.UserStore
	Tokens *auth.TokenService
}

func NewAuthController(users *store.UserStore, tokens *auth.TokenService) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

type signInRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	SubjectID   uint   `json:"subjectID"`
	SubjectName string `json:"subjectName"`
	CompanyID   int    `json:"companyID"`
	CompanyName string `json:"companyName"`
}

// SignIn authenticates a user and returns a bearer token.
// The Access-Type header is accepted for client differentiation but unused.
func (ctl *AuthController) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "无效的请求参数")
		return
	}

	user, err := ctl.Users.Authenticate(req.Account, req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, MsgInternalError)
		return
	}
	if user == nil {
		Fail(c, http.StatusUnauthorized, "用户名或密码不正确")
		return
	}

	token, err := ctl.Tokens.Issue(user.ID, user.CompanyID, user.Name)
	if err != nil {
		Fail(c, http.StatusInternalServerError, MsgInternalError)
		return
	}
	OK(c, token)
}

// GetUserByToken returns the identity behind the presented token.
func (ctl *AuthController) GetUserByToken(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Fail(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}
	OK(c, userResponse{
		SubjectID:   user.ID,
		SubjectName: user.Name,
		CompanyID:   user.CompanyID,
		CompanyName: user.CompanyName,
	})
}

// CurrentUserKey is the gin context key under which the auth middleware
// stores the resolved *models.User.
const CurrentUserKey = "current_user"

// CurrentUser returns the user the auth middleware resolved, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
