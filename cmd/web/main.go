package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fabricpro.io/fabric-web/internal/chat"
	"fabricpro.io/fabric-web/internal/config"
	"fabricpro.io/fabric-web/internal/contact"
	"fabricpro.io/fabric-web/internal/content"
	"fabricpro.io/fabric-web/internal/landing"
	mw "fabricpro.io/fabric-web/internal/middleware"
)

// app wires the handlers to their collaborators. Tests construct one directly
// against stub backends.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	landing *landing.Client
	chat    *chat.Client
	contact *contact.Client
	faqs    *content.Store

	templatesDir string
	publicDir    string
	tmpl         *template.Template
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		addr     string
		tmplPath string
		pubPath  string
	)
	flag.StringVar(&addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", "templates", "templates directory")
	flag.StringVar(&pubPath, "public", "public", "public assets directory")
	flag.Parse()

	log, err := newLogger(cfg.DevMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	a := &app{
		cfg:          cfg,
		log:          log,
		landing:      landing.NewClient(cfg, log),
		chat:         chat.NewClient(cfg, log),
		contact:      contact.NewClient(cfg, log),
		faqs:         content.NewStore(cfg.FAQPath),
		templatesDir: tmplPath,
		publicDir:    pubPath,
	}

	if !cfg.DevMode {
		// Parse templates once in production; dev mode reparses per request.
		tc, err := a.parseTemplates()
		if err != nil {
			log.Fatal("parse templates", zap.Error(err))
		}
		a.tmpl = tc
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("web listening", zap.String("addr", addr), zap.Bool("dev", cfg.DevMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("listen", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that owns it.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(a.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(a.publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/robots.txt", a.robotsHandler)
	r.Get("/sitemap.xml", a.sitemapHandler)

	r.Post("/api/chat", a.chatHandler)
	r.Post("/api/contact", a.contactSubmitHandler)
	r.Post("/api/contact/draft", a.contactDraftHandler)

	r.Get("/", a.homeHandler)
	r.Get("/{slug}", a.landingHandler)

	return r
}

func (a *app) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	var files []string
	err := filepath.WalkDir(a.templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the base layout with statusCode. Dev mode reparses templates
// on every request so edits show up without a restart.
func (a *app) render(w http.ResponseWriter, statusCode int, data any) {
	t := a.tmpl
	if a.cfg.DevMode || t == nil {
		tc, err := a.parseTemplates()
		if err != nil {
			a.log.Error("template parse", zap.Error(err))
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
		t = tc
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		a.log.Error("template exec", zap.Error(err))
	}
}
