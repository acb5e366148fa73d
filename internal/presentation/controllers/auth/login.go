package auth

import (
	"encoding/json"
	"net/http"

	"github.com/budgify/backend/internal/domain/usecase"
	"github.com/budgify/backend/internal/presentation/helpers"
	presentationProtocols "github.com/budgify/backend/internal/presentation/protocols"
	"github.com/budgify/backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewLoginController(
	findUserByEmail usecase.FindUserByEmailRepository,
	accessToken *utils.AccessTokenUtil,
) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		AccessToken:               accessToken,
		Validate:                  validate,
	}
}

type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginBody
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

	user, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid credentials",
		}, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid credentials",
		}, http.StatusUnauthorized)
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
