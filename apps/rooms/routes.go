package rooms

import (
	"fmt"
	"net/http"
)

func (app *Rooms) apiRoutes(prefix string, mux *http.ServeMux) {
	apiPrefix := fmt.Sprintf("/%s/api", prefix)

	mux.HandleFunc(
		fmt.Sprintf("GET %s/tv/ws", apiPrefix),
		app.Services.WebSocket.Handler(),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/salle/{id}/disponible", apiPrefix),
		app.availabilityHandler,
	)
}

func (app *Rooms) Routes(prefix string, mux *http.ServeMux) {
	app.templateRoutes(prefix, mux)
	app.apiRoutes(prefix, mux)
}
