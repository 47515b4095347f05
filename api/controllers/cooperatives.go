package controllers

import (
	"net/http"

	"github.com/ecolinkdev/ecolink-back/api/responses"
	"github.com/ecolinkdev/ecolink-back/api/validators"
	"github.com/ecolinkdev/ecolink-back/internal/cooperatives"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
)

// CooperativesCreate adds a partner to the public directory.
func CooperativesCreate(svc cooperatives.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "cooperatives service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body cooperatives.CreateCooperativeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CooperativesList returns the public directory page.
func CooperativesList(svc cooperatives.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "cooperatives service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
