package v1handler

import (
	"net/http"
	"time"

	"orgdomain/pkg/domain"
	"orgdomain/pkg/serrors"

	"github.com/go-faster/jx"
)

// VerifyDomain checks the TXT challenge of the claim in the path and responds
// with its state after the check.
func (h *Handler) VerifyDomain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		writeError(w, r, serrors.KindOnly(serrors.ErrUnauthorized))

		return
	}

	id, err := domain.ParseOrganizationDomainID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain id"))

		return
	}

	d, err := h.deps.Verifier.UserVerify(ctx, userID, id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	encodeOrganizationDomain(&e, d)
	writeJSON(w, http.StatusOK, e.Bytes())
}

func encodeOrganizationDomain(e *jx.Encoder, d *domain.OrganizationDomain) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(d.ID.String())
	e.FieldStart("organizationId")
	e.Str(d.OrganizationID.String())
	e.FieldStart("domainName")
	e.Str(d.DomainName)
	e.FieldStart("txt")
	e.Str(d.Txt)
	e.FieldStart("creationDate")
	encodeTime(e, &d.CreationDate)
	e.FieldStart("verifiedDate")
	encodeTime(e, d.VerifiedDate)
	e.FieldStart("lastCheckedDate")
	encodeTime(e, d.LastCheckedDate)
	e.FieldStart("nextRunDate")
	encodeTime(e, &d.NextRunDate)
	e.FieldStart("jobRunCount")
	e.Int(d.JobRunCount)
	e.FieldStart("verified")
	e.Bool(d.IsVerified())
	e.ObjEnd()
}

func encodeTime(e *jx.Encoder, t *time.Time) {
	if t == nil || t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}
