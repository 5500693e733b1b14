package stub

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"invprime/internal/utils"
)

// NewRouter mounts the full fake API under /api, mirroring the paths
// the real backend serves.
func NewRouter(log zerolog.Logger, store *Store, origin string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(log))
	r.Use(recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	uh := newUserHTTP(store)
	th := newTicketHTTP(store)
	ih := newInventoryHTTP(store)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/login/", uh.Login())
			r.Post("/register/", uh.Register())
			r.Get("/getUsers/", uh.List())
			r.Put("/update/", uh.Update())
			r.Delete("/delete/", uh.Delete())
			r.Get("/roles/", uh.ListRoles())
			// Both create paths are live in the wild; serve them
			// identically.
			r.Post("/roles/", uh.CreateRole())
			r.Post("/roles/add/", uh.CreateRole())
			r.Patch("/roles/{roleID}/active/", uh.SetRoleActive())
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Post("/create/", th.Create())
			r.Post("/action/{ticketID}/", th.Action())
			r.Get("/list/", th.List())
			r.Get("/list/all/", th.ListAll())
			r.Get("/dashboard/{userID}/", th.Assigned())
			r.Get("/ticket-history/ticket/{ticketID}/", th.History())
			r.Put("/update-ticket-status/", th.UpdateStatus())
			r.Get("/workflows/", th.ListWorkflows())
		})

		r.Post("/workflows/create-with-roles/", th.CreateWorkflow())
		r.Get("/dashboard/employee/{employeeID}/summary/", th.Summary())

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/list/", ih.List())
			r.Post("/add/", ih.Add())
			r.Put("/update/", ih.Update())
			r.Delete("/delete/", ih.Delete())
			r.Post("/issue/", ih.Issue())
			r.Get("/assets/", ih.Assets())
			r.Get("/assets/employee/{employeeID}/", ih.EmployeeAssets())
			r.Get("/assets/inventory/{inventoryID}/", ih.InventoryAssets())
			r.Get("/assets/{assetID}/", ih.AssetDetail())
		})
	})

	return r
}
