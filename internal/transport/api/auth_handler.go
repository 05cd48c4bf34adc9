package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/service"
	"github.com/gin-gonic/gin"
)

const tokenTypeBearer = "bearer"

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	FullName string `binding:"required,min=2,max=100"              json:"full_name"`
	Username string `binding:"required,min=3,max=50"               json:"username"`
	Email    string `binding:"required,email,max=255"              json:"email"`
	Password string `binding:"required,min=6,max=128,max_bytes=72" json:"password"`
}

// Register POST RouteGroup + RegisterRoute. Регистрирует пользователя.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		FullName: params.FullName,
		Username: params.Username,
		Email:    params.Email,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abortWithError(c, http.StatusConflict,
				errors.New("user with this username or email already exists"), gin.ErrorTypePublic)
			return
		}
		var valErr *domain.ValidationError
		if errors.As(createErr, &valErr) {
			abortWithError(c, http.StatusUnprocessableEntity, valErr, gin.ErrorTypePublic)
			return
		}
		abortWithError(c, http.StatusInternalServerError, createErr, gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

type UserLoginParams struct {
	Username string `binding:"required,max=50"  json:"username"`
	Password string `binding:"required,max=128" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре логин/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrPasswordMissMatch):
			abortWithError(c, http.StatusUnauthorized, errors.New("incorrect username or password"), gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrUserInactive):
			abortWithError(c, http.StatusUnauthorized, errors.New("inactive user"), gin.ErrorTypePublic)
		default:
			abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: tokenTypeBearer})
}
