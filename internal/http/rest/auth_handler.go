package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/util"
	"github.com/cleanninja/clean_ninja_api/util/tracing"
	"github.com/cleanninja/clean_ninja_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/login", Handler(api.Login))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/logout", Handler(api.Logout))
	})

	return mux
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.DisplayName) {
		return respondWithError(errors.New("display name is required"), "display name is required", values.Unprocessable, &tc)
	}
	if req.UserID == "" {
		req.UserID = util.GenerateUUID().String()
	}

	caller := api.Deps.Identity.Login(req.UserID, req.DisplayName)
	profile := api.Deps.Waste.Profile(caller)

	token, err := api.generateAccessToken(caller)
	if err != nil {
		return respondWithError(err, "failed to generate token", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Logged in successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       model.LoginResponse{Token: token, Profile: &profile},
	}
}

func (api *API) Logout(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	api.Deps.Identity.Logout()

	return &ServerResponse{
		Message:    "Logged out successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) generateAccessToken(caller model.UserSnapshot) (string, error) {
	expiry, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":  caller.ID,
		"name": caller.DisplayName,
		"typ":  "access",
		"exp":  time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(api.Config.JwtSecret))
}
