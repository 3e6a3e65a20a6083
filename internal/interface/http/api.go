package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domproduct "example.com/supplement-store/internal/domain/product"
	domuser "example.com/supplement-store/internal/domain/user"
	authuc "example.com/supplement-store/internal/usecase/auth"
	cataloguc "example.com/supplement-store/internal/usecase/catalog"
)

type API struct {
	authSvc    *authuc.Service
	catalogSvc *cataloguc.Service
	tokenSvc   authuc.TokenService
	validator  *validator.Validate
	logger     *zap.Logger
}

type Dependencies struct {
	AuthService    *authuc.Service
	CatalogService *cataloguc.Service
	TokenService   authuc.TokenService
	Logger         *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		authSvc:    deps.AuthService,
		catalogSvc: deps.CatalogService,
		tokenSvc:   deps.TokenService,
		validator:  validator.New(),
		logger:     logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", a.handleRegister)
			r.Post("/login", a.handleLogin)

			r.Group(func(pr chi.Router) {
				pr.Use(a.authMiddleware)
				pr.Get("/me", a.handleMe)
				pr.Put("/profile", a.handleUpdateProfile)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", a.handleListProducts)
			r.Get("/featured/list", a.handleListFeatured)
			r.Get("/category/{type}", a.handleListByCategory)
			r.Get("/{id}", a.handleGetProduct)

			r.Group(func(ar chi.Router) {
				ar.Use(a.authMiddleware)
				ar.Post("/", a.handleCreateProduct)
				ar.Put("/{id}", a.handleUpdateProduct)
				ar.Delete("/{id}", a.handleDeleteProduct)
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":       u.ID.Hex(),
		"username": u.Username,
		"email":    u.Email,
		"isAdmin":  u.IsAdmin,
		"profile":  u.Profile,
	}
}

var errInternal = errors.New("internal server error")

// handleDomainError maps domain errors onto the response taxonomy.
// Unrecognized failures are logged with detail and surfaced generically
// so storage internals never leak to clients.
func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domproduct.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   verr.Error(),
			Details: verr.Messages,
		})
	case errors.Is(err, domproduct.ErrInvalidProductID):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrEmailTaken),
		errors.Is(err, domuser.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	default:
		a.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, errInternal)
	}
}
