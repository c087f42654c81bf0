package rooms

import (
	"net/http"

	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"salledispo.app/apps/rooms/internal/services"
)

type TVData struct {
	Rooms []services.RoomListing
}

// tvHandler renders the kiosk view for hallway screens: free rooms first,
// no sign-in required.
func (app *Rooms) tvHandler(w http.ResponseWriter, r *http.Request) {
	listings, err := app.Services.Rooms.TVList(r.Context())
	if err != nil {
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "tv.html", TVData{
		Rooms: listings,
	})
}
