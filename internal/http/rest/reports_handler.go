package rest

import (
	"net/http"
	"strconv"

	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/util"
	"github.com/cleanninja/clean_ninja_api/util/tracing"
	"github.com/cleanninja/clean_ninja_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) ReportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateReport))
		r.Method(http.MethodPost, "/images", Handler(api.UploadImage))
		r.Method(http.MethodPut, "/{reportID}/status", Handler(api.TransitionStatus))
		r.Method(http.MethodPost, "/{reportID}/comments", Handler(api.CommentOnReport))
	})

	mux.Method(http.MethodGet, "/", Handler(api.ListReports))
	mux.Method(http.MethodGet, "/recent", Handler(api.GetRecentReports))
	mux.Method(http.MethodGet, "/user/{userID}", Handler(api.GetReportsByUser))
	mux.Method(http.MethodGet, "/cleaned/{userID}", Handler(api.GetCleanedByUser))
	mux.Method(http.MethodGet, "/{reportID}", Handler(api.GetReportByID))
	mux.Method(http.MethodGet, "/{reportID}/comments", Handler(api.GetComments))

	return mux
}

func (api *API) CreateReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ReportDraft
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	caller, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	report, status, message, err := api.CreateReportHelper(req, caller)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	api.Deps.WebSocket.BroadcastEvent("report_created", report)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) ListReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	filter := model.ReportFilter{
		Status:    r.URL.Query().Get("status"),
		WasteType: r.URL.Query().Get("type"),
		Severity:  r.URL.Query().Get("severity"),
	}

	reports, status, message, err := api.FilterReportsHelper(filter)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reports,
	}
}

func (api *API) GetRecentReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	reports := api.Deps.Waste.RecentReports(limit)

	return &ServerResponse{
		Message:    "Recent reports fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

func (api *API) GetReportByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	report, status, message, err := api.GetReportByIDHelper(reportID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) GetReportsByUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	userID := chi.URLParam(r, "userID")

	reports := api.Deps.Waste.ReportsByUser(userID)

	return &ServerResponse{
		Message:    "User reports fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

func (api *API) GetCleanedByUser(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	userID := chi.URLParam(r, "userID")

	reports := api.Deps.Waste.CleanedByUser(userID)

	return &ServerResponse{
		Message:    "Cleaned reports fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

func (api *API) TransitionStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	var req model.TransitionRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	caller, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	report, status, message, err := api.TransitionStatusHelper(reportID, req, caller)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	api.Deps.WebSocket.BroadcastEvent("report_status_changed", report)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

func (api *API) CommentOnReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	var req struct {
		Text string `json:"text"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	caller, err := util.GetIdentityFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get identity from context", values.NotAuthorised, &tc)
	}

	comment, status, message, err := api.AddCommentHelper(reportID, req.Text, caller)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) GetComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID := chi.URLParam(r, "reportID")

	comments, status, message, err := api.ListCommentsHelper(reportID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comments,
	}
}

// UploadImage stores raw image bytes with the configured image store and
// returns the opaque reference to attach to a draft or cleanup.
func (api *API) UploadImage(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	file, _, err := r.FormFile("image")
	if err != nil {
		return respondWithError(err, "missing image file", values.BadRequestBody, &tc)
	}
	defer file.Close()

	ref, err := api.Deps.Images.Upload(r.Context(), file, api.Config.CloudinaryFolder)
	if err != nil {
		return respondWithError(err, "failed to upload image", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Image uploaded successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       map[string]string{"url": ref},
	}
}
