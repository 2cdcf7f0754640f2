package http

import (
	"encoding/json"
	"net/http"
	"time"

	"facility-admin/internal/config"
	"facility-admin/internal/domain/academy"
	"facility-admin/internal/domain/account"
	"facility-admin/internal/domain/ads"
	"facility-admin/internal/domain/court"
	"facility-admin/internal/domain/gatepass"
	"facility-admin/internal/domain/notice"
	"facility-admin/internal/domain/order"
	"facility-admin/internal/domain/payments"
	"facility-admin/internal/domain/retail"
	"facility-admin/internal/domain/sport"
	"facility-admin/internal/domain/stats"
	"facility-admin/internal/middleware"
	"facility-admin/internal/uploads"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg         config.Config
	AuthClient  *auth.Client
	AcademySvc  *academy.Service
	SportSvc    *sport.Service
	CourtSvc    *court.Service
	RetailSvc   *retail.Service
	OrderSvc    *order.Service
	GatePassSvc *gatepass.Service
	NoticeSvc   *notice.Service
	AdsSvc      *ads.Service
	AccountSvc  *account.Service
	StatsSvc    *stats.Service
	PaymentsSvc *payments.Service
	UploadsSvc  *uploads.Service
	SignedURLs  *uploads.SignedURLs
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Stripe Webhook (no auth required) =====
	if d.PaymentsSvc != nil {
		r.Post("/v1/payments/webhook", d.PaymentsSvc.HandleWebhook)
	}

	// Protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			WriteJSON(w, 200, map[string]any{
				"uid":    au.UID,
				"email":  au.Email,
				"claims": au.Claims,
			})
		})

		// ===== Academy routes =====
		pr.Post("/v1/projects/{projectId}/academies", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in academy.CreateAcademyInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.AcademySvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/academies", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			q := r.URL.Query().Get("q")
			var (
				out []academy.Academy
				err error
			)
			if q != "" {
				out, err = d.AcademySvc.Search(r.Context(), projectID, q)
			} else {
				out, err = d.AcademySvc.List(r.Context(), projectID)
			}
			if err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"academies": out})
		})

		pr.Get("/v1/projects/{projectId}/academies/{academyId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			if projectID == "" || academyID == "" {
				Fail(w, 400, "missing projectId or academyId")
				return
			}

			out, err := d.AcademySvc.Get(r.Context(), projectID, academyID)
			if err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/projects/{projectId}/academies/{academyId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			if projectID == "" || academyID == "" {
				Fail(w, 400, "missing projectId or academyId")
				return
			}

			var in academy.UpdateAcademyInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.AcademySvc.Update(r.Context(), projectID, academyID, in); err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Delete("/v1/projects/{projectId}/academies/{academyId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			if projectID == "" || academyID == "" {
				Fail(w, 400, "missing projectId or academyId")
				return
			}

			if err := d.AcademySvc.Delete(r.Context(), projectID, academyID); err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": academyID})
		})

		// Programs are embedded in the academy document; each mutation below
		// rewrites the full list.
		pr.Post("/v1/projects/{projectId}/academies/{academyId}/programs", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			if projectID == "" || academyID == "" {
				Fail(w, 400, "missing projectId or academyId")
				return
			}

			var in academy.ProgramInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.AcademySvc.AddProgram(r.Context(), projectID, academyID, in)
			if err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Put("/v1/projects/{projectId}/academies/{academyId}/programs/{programId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			programID := chi.URLParam(r, "programId")
			if projectID == "" || academyID == "" || programID == "" {
				Fail(w, 400, "missing projectId, academyId or programId")
				return
			}

			var in academy.ProgramInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.AcademySvc.UpdateProgram(r.Context(), projectID, academyID, programID, in)
			if err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/projects/{projectId}/academies/{academyId}/programs/{programId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			academyID := chi.URLParam(r, "academyId")
			programID := chi.URLParam(r, "programId")
			if projectID == "" || academyID == "" || programID == "" {
				Fail(w, 400, "missing projectId, academyId or programId")
				return
			}

			if err := d.AcademySvc.DeleteProgram(r.Context(), projectID, academyID, programID); err != nil {
				status, msg := mapAcademyError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": programID})
		})

		// ===== Sport routes =====
		pr.Post("/v1/projects/{projectId}/sports", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in sport.CreateSportInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.SportSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/sports", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			activeOnly := r.URL.Query().Get("activeOnly") == "true"
			out, err := d.SportSvc.List(r.Context(), projectID, activeOnly)
			if err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"sports": out})
		})

		pr.Get("/v1/projects/{projectId}/sports/{sportId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			sportID := chi.URLParam(r, "sportId")
			if projectID == "" || sportID == "" {
				Fail(w, 400, "missing projectId or sportId")
				return
			}

			out, err := d.SportSvc.Get(r.Context(), projectID, sportID)
			if err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/projects/{projectId}/sports/{sportId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			sportID := chi.URLParam(r, "sportId")
			if projectID == "" || sportID == "" {
				Fail(w, 400, "missing projectId or sportId")
				return
			}

			var in sport.UpdateSportInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.SportSvc.Update(r.Context(), projectID, sportID, in); err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/projects/{projectId}/sports/{sportId}/toggle", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			sportID := chi.URLParam(r, "sportId")
			if projectID == "" || sportID == "" {
				Fail(w, 400, "missing projectId or sportId")
				return
			}

			out, err := d.SportSvc.ToggleActive(r.Context(), projectID, sportID)
			if err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/projects/{projectId}/sports/{sportId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			sportID := chi.URLParam(r, "sportId")
			if projectID == "" || sportID == "" {
				Fail(w, 400, "missing projectId or sportId")
				return
			}

			if err := d.SportSvc.Delete(r.Context(), projectID, sportID); err != nil {
				status, msg := mapSportError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": sportID})
		})

		// ===== Court routes =====
		pr.Post("/v1/projects/{projectId}/courts", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in court.CreateCourtInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.CourtSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/courts", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			sportID := r.URL.Query().Get("sportId")
			status := r.URL.Query().Get("status")
			out, err := d.CourtSvc.List(r.Context(), projectID, sportID, status)
			if err != nil {
				st, msg := mapCourtError(err)
				Fail(w, st, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"courts": out})
		})

		pr.Get("/v1/projects/{projectId}/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			courtID := chi.URLParam(r, "courtId")
			if projectID == "" || courtID == "" {
				Fail(w, 400, "missing projectId or courtId")
				return
			}

			out, err := d.CourtSvc.Get(r.Context(), projectID, courtID)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/projects/{projectId}/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			courtID := chi.URLParam(r, "courtId")
			if projectID == "" || courtID == "" {
				Fail(w, 400, "missing projectId or courtId")
				return
			}

			var in court.UpdateCourtInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			oldImagePath, err := d.CourtSvc.Update(r.Context(), projectID, courtID, in)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			// Document write succeeded; the replaced blob is best-effort cleanup.
			if oldImagePath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), oldImagePath)
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Put("/v1/projects/{projectId}/courts/{courtId}/status", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			courtID := chi.URLParam(r, "courtId")
			if projectID == "" || courtID == "" {
				Fail(w, 400, "missing projectId or courtId")
				return
			}

			var body struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.CourtSvc.UpdateStatus(r.Context(), projectID, courtID, body.Status); err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Get("/v1/projects/{projectId}/courts/{courtId}/slots", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			courtID := chi.URLParam(r, "courtId")
			if projectID == "" || courtID == "" {
				Fail(w, 400, "missing projectId or courtId")
				return
			}

			day := r.URL.Query().Get("day")
			out, err := d.CourtSvc.Slots(r.Context(), projectID, courtID, day)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"slots": out})
		})

		pr.Delete("/v1/projects/{projectId}/courts/{courtId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			courtID := chi.URLParam(r, "courtId")
			if projectID == "" || courtID == "" {
				Fail(w, 400, "missing projectId or courtId")
				return
			}

			imagePath, err := d.CourtSvc.Delete(r.Context(), projectID, courtID)
			if err != nil {
				status, msg := mapCourtError(err)
				Fail(w, status, msg)
				return
			}
			if imagePath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), imagePath)
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": courtID})
		})

		// ===== Store routes =====
		pr.Post("/v1/projects/{projectId}/stores", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in retail.CreateStoreInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.RetailSvc.CreateStore(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/stores", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			out, err := d.RetailSvc.ListStores(r.Context(), projectID, r.URL.Query().Get("type"))
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"stores": out})
		})

		pr.Get("/v1/projects/{projectId}/stores/{storeId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			out, err := d.RetailSvc.GetStore(r.Context(), projectID, storeID)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/projects/{projectId}/stores/{storeId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			var in retail.UpdateStoreInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.RetailSvc.UpdateStore(r.Context(), projectID, storeID, in); err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Put("/v1/projects/{projectId}/stores/{storeId}/status", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			var body struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.RetailSvc.UpdateStoreStatus(r.Context(), projectID, storeID, body.Status); err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Delete("/v1/projects/{projectId}/stores/{storeId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			if err := d.RetailSvc.DeleteStore(r.Context(), projectID, storeID); err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": storeID})
		})

		pr.Post("/v1/projects/{projectId}/stores/{storeId}/ratings", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			var body struct {
				Value   float64 `json:"value"`
				Comment string  `json:"comment,omitempty"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.RetailSvc.AddRating(r.Context(), projectID, storeID, au.UID, body.Value, body.Comment)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		// ===== Product routes =====
		pr.Post("/v1/projects/{projectId}/stores/{storeId}/products", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			var in retail.CreateProductInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.RetailSvc.CreateProduct(r.Context(), projectID, storeID, in)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/stores/{storeId}/products", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			out, err := d.RetailSvc.ListProducts(r.Context(), projectID, storeID)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}

			q := r.URL.Query().Get("q")
			category := r.URL.Query().Get("category")
			if q != "" || category != "" {
				out = retail.FilterProducts(out, q, category)
			}
			WriteJSON(w, 200, map[string]any{"products": out})
		})

		pr.Put("/v1/projects/{projectId}/stores/{storeId}/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			productID := chi.URLParam(r, "productId")
			if projectID == "" || storeID == "" || productID == "" {
				Fail(w, 400, "missing projectId, storeId or productId")
				return
			}

			var in retail.UpdateProductInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			oldImagePath, err := d.RetailSvc.UpdateProduct(r.Context(), projectID, storeID, productID, in)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			if oldImagePath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), oldImagePath)
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Delete("/v1/projects/{projectId}/stores/{storeId}/products/{productId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			productID := chi.URLParam(r, "productId")
			if projectID == "" || storeID == "" || productID == "" {
				Fail(w, 400, "missing projectId, storeId or productId")
				return
			}

			imagePath, err := d.RetailSvc.DeleteProduct(r.Context(), projectID, storeID, productID)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			if imagePath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), imagePath)
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": productID})
		})

		pr.Get("/v1/projects/{projectId}/stores/{storeId}/stock", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			storeID := chi.URLParam(r, "storeId")
			if projectID == "" || storeID == "" {
				Fail(w, 400, "missing projectId or storeId")
				return
			}

			out, err := d.RetailSvc.Stock(r.Context(), projectID, storeID)
			if err != nil {
				status, msg := mapRetailError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Order routes =====
		pr.Post("/v1/projects/{projectId}/orders", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in order.CreateOrderInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.OrderSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapOrderError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/orders", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			status := r.URL.Query().Get("status")
			paymentStatus := r.URL.Query().Get("paymentStatus")
			out, err := d.OrderSvc.List(r.Context(), projectID, status, paymentStatus)
			if err != nil {
				st, msg := mapOrderError(err)
				Fail(w, st, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"orders": out})
		})

		pr.Get("/v1/projects/{projectId}/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			orderID := chi.URLParam(r, "orderId")
			if projectID == "" || orderID == "" {
				Fail(w, 400, "missing projectId or orderId")
				return
			}

			out, err := d.OrderSvc.Get(r.Context(), projectID, orderID)
			if err != nil {
				status, msg := mapOrderError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/projects/{projectId}/orders/{orderId}/items", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			orderID := chi.URLParam(r, "orderId")
			if projectID == "" || orderID == "" {
				Fail(w, 400, "missing projectId or orderId")
				return
			}

			var item order.OrderItem
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.OrderSvc.AddItem(r.Context(), projectID, orderID, item)
			if err != nil {
				status, msg := mapOrderError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/projects/{projectId}/orders/{orderId}/status", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			orderID := chi.URLParam(r, "orderId")
			if projectID == "" || orderID == "" {
				Fail(w, 400, "missing projectId or orderId")
				return
			}

			var body struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.OrderSvc.UpdateStatus(r.Context(), projectID, orderID, body.Status)
			if err != nil {
				status, msg := mapOrderError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/projects/{projectId}/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			orderID := chi.URLParam(r, "orderId")
			if projectID == "" || orderID == "" {
				Fail(w, 400, "missing projectId or orderId")
				return
			}

			if err := d.OrderSvc.Delete(r.Context(), projectID, orderID); err != nil {
				status, msg := mapOrderError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": orderID})
		})

		// ===== Payments routes (protected) =====
		if d.PaymentsSvc != nil {
			pr.Post("/v1/projects/{projectId}/orders/{orderId}/payment-intent", func(w http.ResponseWriter, r *http.Request) {
				projectID := chi.URLParam(r, "projectId")
				orderID := chi.URLParam(r, "orderId")
				if projectID == "" || orderID == "" {
					Fail(w, 400, "missing projectId or orderId")
					return
				}

				out, err := d.PaymentsSvc.CreateIntent(r.Context(), projectID, orderID)
				if err != nil {
					status, msg := mapPaymentsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			pr.Post("/v1/projects/{projectId}/orders/{orderId}/refund", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				if !middleware.IsStaff(au.Claims) {
					Fail(w, 403, "staff permission required")
					return
				}

				projectID := chi.URLParam(r, "projectId")
				orderID := chi.URLParam(r, "orderId")
				if projectID == "" || orderID == "" {
					Fail(w, 400, "missing projectId or orderId")
					return
				}

				if err := d.PaymentsSvc.RefundOrder(r.Context(), projectID, orderID); err != nil {
					status, msg := mapPaymentsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"success": true})
			})
		}

		// ===== Gate pass routes =====
		pr.Post("/v1/projects/{projectId}/gate-passes", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in gatepass.CreatePassInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.GatePassSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/gate-passes", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			passType := r.URL.Query().Get("type")
			status := r.URL.Query().Get("status")
			out, err := d.GatePassSvc.List(r.Context(), projectID, passType, status)
			if err != nil {
				st, msg := mapGatePassError(err)
				Fail(w, st, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"gatePasses": out})
		})

		pr.Get("/v1/projects/{projectId}/gate-passes/{passId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			passID := chi.URLParam(r, "passId")
			if projectID == "" || passID == "" {
				Fail(w, 400, "missing projectId or passId")
				return
			}

			out, err := d.GatePassSvc.Get(r.Context(), projectID, passID)
			if err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/projects/{projectId}/gate-passes/{passId}/check-in", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			passID := chi.URLParam(r, "passId")
			if projectID == "" || passID == "" {
				Fail(w, 400, "missing projectId or passId")
				return
			}

			out, err := d.GatePassSvc.CheckIn(r.Context(), projectID, passID)
			if err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/projects/{projectId}/gate-passes/{passId}/check-out", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			passID := chi.URLParam(r, "passId")
			if projectID == "" || passID == "" {
				Fail(w, 400, "missing projectId or passId")
				return
			}

			out, err := d.GatePassSvc.CheckOut(r.Context(), projectID, passID)
			if err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/projects/{projectId}/gate-passes/{passId}/revoke", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			passID := chi.URLParam(r, "passId")
			if projectID == "" || passID == "" {
				Fail(w, 400, "missing projectId or passId")
				return
			}

			out, err := d.GatePassSvc.Revoke(r.Context(), projectID, passID)
			if err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/projects/{projectId}/gate-passes/{passId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			passID := chi.URLParam(r, "passId")
			if projectID == "" || passID == "" {
				Fail(w, 400, "missing projectId or passId")
				return
			}

			if err := d.GatePassSvc.Delete(r.Context(), projectID, passID); err != nil {
				status, msg := mapGatePassError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": passID})
		})

		// ===== Notification routes =====
		pr.Post("/v1/projects/{projectId}/notifications", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsStaff(au.Claims) {
				Fail(w, 403, "staff permission required")
				return
			}

			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in notice.CreateNoticeInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.NoticeSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapNoticeError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/notifications", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			noticeType := r.URL.Query().Get("type")
			activeOnly := r.URL.Query().Get("activeOnly") == "true"
			out, err := d.NoticeSvc.List(r.Context(), projectID, noticeType, activeOnly)
			if err != nil {
				status, msg := mapNoticeError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"notifications": out})
		})

		pr.Put("/v1/projects/{projectId}/notifications/{noticeId}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsStaff(au.Claims) {
				Fail(w, 403, "staff permission required")
				return
			}

			projectID := chi.URLParam(r, "projectId")
			noticeID := chi.URLParam(r, "noticeId")
			if projectID == "" || noticeID == "" {
				Fail(w, 400, "missing projectId or noticeId")
				return
			}

			var in notice.UpdateNoticeInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.NoticeSvc.Update(r.Context(), projectID, noticeID, in); err != nil {
				status, msg := mapNoticeError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/projects/{projectId}/notifications/{noticeId}/toggle", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			noticeID := chi.URLParam(r, "noticeId")
			if projectID == "" || noticeID == "" {
				Fail(w, 400, "missing projectId or noticeId")
				return
			}

			out, err := d.NoticeSvc.ToggleActive(r.Context(), projectID, noticeID)
			if err != nil {
				status, msg := mapNoticeError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Delete("/v1/projects/{projectId}/notifications/{noticeId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			noticeID := chi.URLParam(r, "noticeId")
			if projectID == "" || noticeID == "" {
				Fail(w, 400, "missing projectId or noticeId")
				return
			}

			if err := d.NoticeSvc.Delete(r.Context(), projectID, noticeID); err != nil {
				status, msg := mapNoticeError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		// ===== Ads routes =====
		pr.Post("/v1/projects/{projectId}/ads", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsStaff(au.Claims) {
				Fail(w, 403, "staff permission required")
				return
			}

			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			var in ads.CreateAdInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			out, err := d.AdsSvc.Create(r.Context(), projectID, in)
			if err != nil {
				status, msg := mapAdsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/projects/{projectId}/ads", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			if projectID == "" {
				Fail(w, 400, "missing projectId")
				return
			}

			out, err := d.AdsSvc.List(r.Context(), projectID)
			if err != nil {
				status, msg := mapAdsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ads": out})
		})

		pr.Put("/v1/projects/{projectId}/ads/{adId}/image", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			adID := chi.URLParam(r, "adId")
			if projectID == "" || adID == "" {
				Fail(w, 400, "missing projectId or adId")
				return
			}

			var body struct {
				ImageURL  string `json:"imageUrl"`
				ImagePath string `json:"imagePath"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			oldPath, err := d.AdsSvc.ReplaceImage(r.Context(), projectID, adID, body.ImageURL, body.ImagePath)
			if err != nil {
				status, msg := mapAdsError(err)
				Fail(w, status, msg)
				return
			}
			if oldPath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), oldPath)
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/projects/{projectId}/ads/{adId}/toggle", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			adID := chi.URLParam(r, "adId")
			if projectID == "" || adID == "" {
				Fail(w, 400, "missing projectId or adId")
				return
			}

			if err := d.AdsSvc.ToggleActive(r.Context(), projectID, adID); err != nil {
				status, msg := mapAdsError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Delete("/v1/projects/{projectId}/ads/{adId}", func(w http.ResponseWriter, r *http.Request) {
			projectID := chi.URLParam(r, "projectId")
			adID := chi.URLParam(r, "adId")
			if projectID == "" || adID == "" {
				Fail(w, 400, "missing projectId or adId")
				return
			}

			imagePath, err := d.AdsSvc.Delete(r.Context(), projectID, adID)
			if err != nil {
				status, msg := mapAdsError(err)
				Fail(w, status, msg)
				return
			}
			if imagePath != "" && d.UploadsSvc != nil {
				d.UploadsSvc.DeleteQuietly(r.Context(), imagePath)
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": adID})
		})

		// ===== Stats routes =====
		if d.StatsSvc != nil {
			pr.Get("/v1/projects/{projectId}/stats", func(w http.ResponseWriter, r *http.Request) {
				projectID := chi.URLParam(r, "projectId")
				if projectID == "" {
					Fail(w, 400, "missing projectId")
					return
				}

				out, err := d.StatsSvc.GetDashboardStats(r.Context(), projectID)
				if err != nil {
					status, msg := mapStatsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})
		}

		// ===== Upload routes =====
		if d.UploadsSvc != nil {
			pr.Post("/v1/projects/{projectId}/uploads/{entityType}", func(w http.ResponseWriter, r *http.Request) {
				projectID := chi.URLParam(r, "projectId")
				entityType := chi.URLParam(r, "entityType")
				if projectID == "" || entityType == "" {
					Fail(w, 400, "missing projectId or entityType")
					return
				}

				if err := r.ParseMultipartForm(8 << 20); err != nil {
					Fail(w, 400, "invalid multipart form")
					return
				}
				file, header, err := r.FormFile("file")
				if err != nil {
					Fail(w, 400, uploads.ErrNoFile.Error())
					return
				}
				defer file.Close()

				contentType := header.Header.Get("Content-Type")
				if err := uploads.Validate(header.Filename, contentType, header.Size); err != nil {
					Fail(w, 400, err.Error())
					return
				}

				objectPath := uploads.ObjectPath(projectID, entityType, header.Filename)
				out, err := d.UploadsSvc.Upload(r.Context(), objectPath, contentType, file)
				if err != nil {
					Fail(w, 500, err.Error())
					return
				}
				WriteJSON(w, 201, out)
			})
		}

		if d.SignedURLs != nil {
			pr.Post("/v1/uploads/signed-url", d.SignedURLs.CreateSignedUploadURL)
		}

		// ===== Platform user routes =====
		pr.Post("/v1/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var in account.CreateUserInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.Trim()

			out, err := d.AccountSvc.CreateUser(r.Context(), au.UID, in)
			if err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Post("/v1/users/validate-access", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())

			var body struct {
				UID string `json:"uid,omitempty"`
			}
			// An empty body means the caller validates itself.
			_ = json.NewDecoder(r.Body).Decode(&body)
			target := body.UID
			if target == "" {
				target = au.UID
			}

			out, err := d.AccountSvc.ValidateAccess(r.Context(), au.UID, target)
			if err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsStaff(au.Claims) {
				Fail(w, 403, "staff permission required")
				return
			}

			out, err := d.AccountSvc.List(r.Context())
			if err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"users": out})
		})

		pr.Get("/v1/users/{uid}", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			uid := chi.URLParam(r, "uid")
			if uid == "" {
				Fail(w, 400, "missing uid")
				return
			}
			if uid != au.UID && !middleware.IsStaff(au.Claims) {
				Fail(w, 403, "permission denied")
				return
			}

			out, err := d.AccountSvc.Get(r.Context(), uid)
			if err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/users/{uid}/suspend", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsAdmin(au.Claims) {
				Fail(w, 403, "admin privileges required")
				return
			}

			uid := chi.URLParam(r, "uid")
			if uid == "" {
				Fail(w, 400, "missing uid")
				return
			}

			var body struct {
				Reason string `json:"reason,omitempty"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				Fail(w, 400, "invalid json")
				return
			}

			if err := d.AccountSvc.Suspend(r.Context(), uid, body.Reason); err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		pr.Post("/v1/users/{uid}/unsuspend", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsAdmin(au.Claims) {
				Fail(w, 403, "admin privileges required")
				return
			}

			uid := chi.URLParam(r, "uid")
			if uid == "" {
				Fail(w, 400, "missing uid")
				return
			}

			if err := d.AccountSvc.Unsuspend(r.Context(), uid); err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true})
		})

		// Manual trigger for the daily sweep, for ops use.
		pr.Post("/v1/admin/sweep-expired", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if !middleware.IsAdmin(au.Claims) {
				Fail(w, 403, "admin privileges required")
				return
			}

			marked, disabled, err := d.AccountSvc.SweepExpired(r.Context())
			if err != nil {
				status, code, msg := mapAccountError(err)
				FailCode(w, status, code, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"success": true, "marked": marked, "disabled": disabled})
		})
	})

	return r
}

func mapAcademyError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case academy.IsErrNotFound(err):
		return 404, err.Error()
	case academy.IsErrValidation(err):
		return 400, err.Error()
	case academy.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapSportError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case sport.IsErrNotFound(err):
		return 404, err.Error()
	case sport.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapCourtError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case court.IsErrNotFound(err):
		return 404, err.Error()
	case court.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapRetailError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case retail.IsErrNotFound(err):
		return 404, err.Error()
	case retail.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapOrderError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case order.IsErrNotFound(err):
		return 404, err.Error()
	case order.IsErrInvalidTransition(err):
		return 409, err.Error()
	case order.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapGatePassError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case gatepass.IsErrNotFound(err):
		return 404, err.Error()
	case gatepass.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapNoticeError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case notice.IsErrNotFound(err):
		return 404, err.Error()
	case notice.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapAdsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case ads.IsErrNotFound(err):
		return 404, err.Error()
	case ads.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapStatsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	if stats.IsErrBadRequest(err) {
		return 400, err.Error()
	}
	return 500, err.Error()
}

func mapPaymentsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case payments.IsErrNotFound(err):
		return 404, err.Error()
	case payments.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

// mapAccountError also yields the machine-readable code clients branch on.
func mapAccountError(err error) (int, string, string) {
	if err == nil {
		return 500, "internal", "unknown error"
	}
	switch {
	case account.IsErrUnauthenticated(err):
		return 401, "unauthenticated", err.Error()
	case account.IsErrInvalidArgument(err):
		return 400, "invalid-argument", err.Error()
	case account.IsErrAlreadyExists(err):
		return 409, "already-exists", err.Error()
	case account.IsErrNotFound(err):
		return 404, "not-found", err.Error()
	case account.IsErrPermissionDenied(err):
		return 403, "permission-denied", err.Error()
	default:
		return 500, "internal", err.Error()
	}
}
