package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wasimadildev/card-to-text-backend/internal/apperr"
	"github.com/wasimadildev/card-to-text-backend/internal/middleware"
	"github.com/wasimadildev/card-to-text-backend/internal/scope"
	"github.com/wasimadildev/card-to-text-backend/internal/utils"
)

// identityFromCtx pulls the authenticated identity the auth middleware
// stored in the request context.
func identityFromCtx(r *http.Request) (scope.Identity, bool) {
	uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
	role, _ := utils.GetString(r.Context(), middleware.CtxRole)
	if uid == "" {
		return scope.Identity{}, false
	}
	return scope.Identity{UserID: uid, Role: role}, true
}

// writeServiceError maps domain errors to status codes. Anything
// outside the taxonomy is an infrastructure failure: logged here,
// surfaced as a generic message.
func writeServiceError(w http.ResponseWriter, l zerolog.Logger, err error) {
	var ve *apperr.ValidationError
	var nf *apperr.NotFoundError
	var fe *apperr.ForbiddenError
	switch {
	case errors.As(err, &ve):
		utils.Error(w, http.StatusBadRequest, ve.Error())
	case errors.As(err, &nf):
		utils.Error(w, http.StatusNotFound, nf.Error())
	case errors.As(err, &fe):
		utils.Error(w, http.StatusForbidden, fe.Error())
	default:
		l.Error().Err(err).Msg("request failed")
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
