// internal/http/rest/reports_helper.go
package rest

import (
	"errors"

	"github.com/cleanninja/clean_ninja_api/internal/model"
	"github.com/cleanninja/clean_ninja_api/internal/waste"
	"github.com/cleanninja/clean_ninja_api/util/values"
)

// statusFor maps domain error kinds onto the response status taxonomy.
func statusFor(err error) string {
	var validationErr *waste.ValidationError
	var notFoundErr *waste.NotFoundError
	var transitionErr *waste.InvalidTransitionError
	var conflictErr *waste.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return values.Unprocessable
	case errors.As(err, &notFoundErr):
		return values.NotFound
	case errors.As(err, &transitionErr):
		return values.NotAllowed
	case errors.As(err, &conflictErr):
		return values.Conflict
	default:
		return values.Error
	}
}

func (api *API) CreateReportHelper(draft model.ReportDraft, caller model.UserSnapshot) (model.WasteReport, string, string, error) {
	report, err := api.Deps.Waste.CreateReport(draft, caller)
	if err != nil {
		return model.WasteReport{}, statusFor(err), err.Error(), err
	}
	return report, values.Created, "Report created successfully", nil
}

func (api *API) GetReportByIDHelper(reportID string) (model.WasteReport, string, string, error) {
	report, err := api.Deps.Waste.GetReport(reportID)
	if err != nil {
		return model.WasteReport{}, statusFor(err), "Report not found", err
	}
	return report, values.Success, "Report fetched successfully", nil
}

func (api *API) FilterReportsHelper(filter model.ReportFilter) ([]model.WasteReport, string, string, error) {
	reports := api.Deps.Waste.FilterReports(filter)
	return reports, values.Success, "Reports fetched successfully", nil
}

func (api *API) TransitionStatusHelper(reportID string, req model.TransitionRequest, caller model.UserSnapshot) (model.WasteReport, string, string, error) {
	report, err := api.Deps.Waste.TransitionStatus(reportID, req.Status, req.CleanedImage, caller)
	if err != nil {
		return model.WasteReport{}, statusFor(err), err.Error(), err
	}
	return report, values.Success, "Report status updated successfully", nil
}

func (api *API) AddCommentHelper(reportID, text string, caller model.UserSnapshot) (model.Comment, string, string, error) {
	comment, err := api.Deps.Waste.AddComment(reportID, text, caller)
	if err != nil {
		return model.Comment{}, statusFor(err), err.Error(), err
	}
	return comment, values.Success, "Comment added successfully", nil
}

func (api *API) ListCommentsHelper(reportID string) ([]model.Comment, string, string, error) {
	comments, err := api.Deps.Waste.ListComments(reportID)
	if err != nil {
		return nil, statusFor(err), "Report not found", err
	}
	return comments, values.Success, "Comments fetched successfully", nil
}
