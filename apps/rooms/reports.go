package rooms

import (
	"fmt"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	"salledispo.app/apps/rooms/internal/dtos"
	"salledispo.app/internal/constants"
)

// reportHandler files an incident for a room. It is reachable without a
// session so the TV screens can report too; the author then becomes the
// public placeholder.
func (app *Rooms) reportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var reportDto dtos.ReportDto

	err = httptools.ReadForm(r, &reportDto)
	if err != nil {
		httptools.RedirectWithError(w, r, app.detailPath(id), err)
		return
	}

	if ok, errs := reportDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	author := constants.PublicReporter
	if user := app.Services.Auth.CurrentUser(r); user != nil {
		author = user.Email
	}

	_, err = app.Services.Reports.File(
		r.Context(),
		id,
		reportDto.ProblemType,
		reportDto.Description,
		author,
	)
	if err != nil {
		httptools.RedirectWithError(w, r, app.detailPath(id), err)
		return
	}

	http.Redirect(w, r, app.detailPath(id), http.StatusSeeOther)
}

func (app *Rooms) detailPath(roomID string) string {
	return fmt.Sprintf("/%s/salle/%s", app.GetName(), roomID)
}
