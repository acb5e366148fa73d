package auth

import (
	"encoding/json"
	"net/http"

	"github.com/budgify/backend/internal/domain/models"
	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/budgify/backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type RegisterController struct {
	CreateUserRepository         usecase.CreateUserRepository
	FindUserByEmailRepository    usecase.FindUserByEmailRepository
	FindUserByUsernameRepository usecase.FindUserByUsernameRepository
	AccessToken                  *utils.AccessTokenUtil
	Validate                     *validator.Validate
}

func NewRegisterController(
	createUser usecase.CreateUserRepository,
	findUserByEmail usecase.FindUserByEmailRepository,
	findUserByUsername usecase.FindUserByUsernameRepository,
	accessToken *utils.AccessTokenUtil,
) *RegisterController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterController{
		CreateUserRepository:         createUser,
		FindUserByEmailRepository:    findUserByEmail,
		FindUserByUsernameRepository: findUserByUsername,
		AccessToken:                  accessToken,
		Validate:                     validate,
	}
}

type RegisterBody struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	existingUser, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking user email",
		}, http.StatusInternalServerError)
	}
	if existingUser != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "User already exists",
		}, http.StatusBadRequest)
	}

	existingUsername, err := c.FindUserByUsernameRepository.Find(body.Username)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error checking username",
		}, http.StatusInternalServerError)
	}
	if existingUsername != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Username already taken",
		}, http.StatusBadRequest)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error hashing password",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Id:        utils.GenerateId(),
		Username:  body.Username,
		Email:     body.Email,
		Password:  string(hashed),
		CreatedAt: utils.CurrentTimestamp(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating user",
		}, http.StatusInternalServerError)
	}

	token, err := c.AccessToken.EncodeToken(user.Id, user.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&TokenResponse{
		Token: token,
		User: UserResponse{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
	}, http.StatusOK)
}
