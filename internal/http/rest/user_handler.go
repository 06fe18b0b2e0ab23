package rest

import (
	"net/http"

	"github.com/cleanninja/clean_ninja_api/util"
	"github.com/cleanninja/clean_ninja_api/util/tracing"
	"github.com/cleanninja/clean_ninja_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodGet, "/profile", Handler(api.GetProfile))
	})

	mux.Method(http.MethodGet, "/{userID}/profile", Handler(api.GetProfileByID))

	return mux
}

func (api *API) GetProfile(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	caller, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	profile := api.Deps.Waste.Profile(caller)

	return &ServerResponse{
		Message:    "User profile retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       profile,
	}
}

func (api *API) GetProfileByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID := chi.URLParam(r, "userID")

	profile, err := api.Deps.Waste.ProfileByID(userID)
	if err != nil {
		return respondWithError(err, "Profile not found", statusFor(err), &tc)
	}

	return &ServerResponse{
		Message:    "User profile retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       profile,
	}
}
