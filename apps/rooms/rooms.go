package rooms

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"salledispo.app/apps/rooms/internal/dtos"
	"salledispo.app/apps/rooms/internal/models"
	"salledispo.app/apps/rooms/internal/services"
)

func (app *Rooms) templateRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.Services.Auth.TemplateAccess(app.indexHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/tv", prefix),
		// deliberately unauthenticated: runs on keyboardless screens
		app.tvHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/salle/{id}", prefix),
		app.Services.Auth.TemplateAccess(app.detailHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/salle/{id}/signaler", prefix),
		app.reportHandler,
	)
}

type IndexData struct {
	Rooms  []services.RoomListing
	Filter dtos.RoomFilterDto
}

func (app *Rooms) indexHandler(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	if ok, errs := filter.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	listings, err := app.Services.Rooms.List(r.Context(), filter)
	if err != nil {
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "index.html", IndexData{
		Rooms:  listings,
		Filter: filter,
	})
}

type DetailData struct {
	Detail  *services.RoomDetail
	Reports []models.Report
}

func (app *Rooms) detailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	detail, err := app.Services.Rooms.Detail(r.Context(), id)
	if err != nil {
		panic(err)
	}

	reports, err := app.Services.Reports.ForRoom(r.Context(), id)
	if err != nil {
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "detail.html", DetailData{
		Detail:  detail,
		Reports: reports,
	})
}

type AvailabilityDto struct {
	Room      string `json:"room"`
	Available bool   `json:"available"`
}

// availabilityHandler answers ad-hoc window queries, e.g. from the booking
// tooling: /rooms/api/salle/204/disponible?debut=14:00&fin=16:00.
func (app *Rooms) availabilityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	//nolint:exhaustruct //only the window fields matter here
	filter := dtos.RoomFilterDto{
		StartTime: r.URL.Query().Get("debut"),
		EndTime:   r.URL.Query().Get("fin"),
		Duration:  r.URL.Query().Get("duree_min"),
	}

	window := app.Services.Rooms.WindowFromFilter(filter)
	if window == nil {
		now := app.Services.Rooms.Now()
		window = &services.Window{
			Start: now,
			End:   now.Add(time.Hour),
		}
	}

	available := app.Services.Rooms.IsAvailable(r.Context(), id, *window)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(AvailabilityDto{
		Room:      id,
		Available: available,
	})
	if err != nil {
		app.logger.Error("failed to write availability response")
	}
}

func filterFromQuery(r *http.Request) dtos.RoomFilterDto {
	q := r.URL.Query()

	return dtos.RoomFilterDto{
		Query:     q.Get("q"),
		PC:        q.Get("pc") != "",
		Projector: q.Get("proj") != "",
		Floor:     q.Get("etage"),
		Wing:      q.Get("aile"),
		Duration:  q.Get("duree_min"),
		StartTime: q.Get("heure_debut"),
		EndTime:   q.Get("heure_fin"),
	}
}
