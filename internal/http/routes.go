package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	quizforge "github.com/rabbitt-ai/quizforge"
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Blueprints   *service.BlueprintService
	Samples      *service.SampleService
	Generator    *service.GenerateService
	CookieDomain string
	IsDev        bool         // Development mode flag for template hot reloading
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	uiHandlers := setupUIHandlers(services)

	registerAuthRoutes(mux, authHandlers)
	if uiHandlers != nil {
		registerUIRoutes(mux, uiHandlers, services.Auth)
		mux.Handle("GET /healthz", http.HandlerFunc(uiHandlers.Healthz))
		mux.Handle("HEAD /healthz", http.HandlerFunc(uiHandlers.Healthz))
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	return BrowserDetection()(handler)
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(quizforge.TemplateFS, "frontend/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:            tr,
		BlueprintSvc: services.Blueprints,
		SampleSvc:    services.Samples,
		GenerateSvc:  services.Generator,
		Logger:       services.Logger,
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// registerUIRoutes wires the browser pages with their access rules. The
// access rules are the single source of truth for who may reach each page.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, auth AuthServiceInterface) {
	anyRole := Guard(auth, domainauth.RouteAccess{})
	userOnly := Guard(auth, domainauth.RouteAccess{AllowedRoles: []domainauth.Role{domainauth.RoleUser}})
	adminOnly := Guard(auth, domainauth.RouteAccess{AllowedRoles: []domainauth.Role{domainauth.RoleAdmin}})

	// Root bounces to the role landing page
	mux.Handle("GET /{$}", anyRole(http.HandlerFunc(h.Home)))

	// Login page is public but redirects authenticated callers away
	mux.Handle("GET /login", OptionalAuth(auth)(http.HandlerFunc(h.LoginPage)))

	// Blueprint and generation pages belong to regular users
	mux.Handle("GET /blueprint", userOnly(http.HandlerFunc(h.BlueprintPage)))
	mux.Handle("POST /blueprint", userOnly(http.HandlerFunc(h.BlueprintCreate)))
	mux.Handle("GET /generate", userOnly(http.HandlerFunc(h.GeneratePage)))
	mux.Handle("POST /generate", userOnly(http.HandlerFunc(h.GenerateQuestions)))
	mux.Handle("POST /generate/export", userOnly(http.HandlerFunc(h.GenerateExport)))

	// Sample sets are visible to every authenticated role; uploads are admin-only
	mux.Handle("GET /samples", anyRole(http.HandlerFunc(h.SamplesPage)))
	mux.Handle("POST /samples/upload", adminOnly(http.HandlerFunc(h.SampleUpload)))
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}
