package controllers

import (
	"errors"
	"log"
	"net/http"

	"hms/src/db"
	"hms/src/models"
	"hms/src/types"
	"hms/src/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthRegister creates an account with a hashed password. New accounts
// start on the free plan.
func AuthRegister(ctx *gin.Context) (*models.User, int, error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	gdb := db.GetDb()
	user := models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
		Plan:     types.PLAN_FREE,
	}
	if err := gdb.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %s\n", err.Error())
		return nil, http.StatusConflict, errors.New("email already registered")
	}
	return &user, http.StatusCreated, nil
}

// AuthLogin verifies credentials and mints a signed token.
func AuthLogin(ctx *gin.Context) (*string, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	gdb := db.GetDb()
	var user models.User
	if err := gdb.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusUnauthorized, errors.New("invalid credentials")
		}
		return nil, http.StatusInternalServerError, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}
	token, err := utils.GenerateJWT(user.Email, user.ID, user.Plan)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &token, http.StatusOK, nil
}
