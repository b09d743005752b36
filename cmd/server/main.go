// Command server exposes the vedyut derivation engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/derive/nominal?stem=<slp1>&vibhakti=<name|1-8>&vacana=<name|1-3>
//	GET /api/derive/verbal?dhatu=<slp1>&gana=<name|1-10>&lakara=<name>&purusha=<name|1-3>&vacana=<name|1-3>
//	GET /api/sandhi/combine?left=<slp1>&right=<slp1>
//	GET /api/sandhi/split?text=<slp1>
//	GET /api/segment?text=<slp1>
//	GET /api/transliterate?text=<text>&from=<scheme>&to=<scheme>
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-sanskrit/vedyut/cheda"
	"github.com/cours-de-sanskrit/vedyut/kosha"
	"github.com/cours-de-sanskrit/vedyut/lipi"
	"github.com/cours-de-sanskrit/vedyut/prakriya"
	"github.com/cours-de-sanskrit/vedyut/sandhi"
)

// ---- JSON response types ------------------------------------------------

type deriveResponse struct {
	Form  string          `json:"form"`
	Steps []prakriya.Step `json:"steps"`
}

type combineResponse struct {
	Result string `json:"result"`
}

type pairJSON struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type splitResponse struct {
	Pairs []pairJSON `json:"pairs"`
}

type segmentationJSON struct {
	Words []string `json:"words"`
}

type segmentResponse struct {
	Results []segmentationJSON `json:"results"`
}

type transliterateResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return false
	}
	return true
}

// ---- handlers -----------------------------------------------------------

func handleDeriveNominal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		stem := q.Get("stem")
		if stem == "" {
			writeError(w, http.StatusBadRequest, "missing 'stem' query parameter")
			return
		}
		v, err := prakriya.ParseVibhakti(q.Get("vibhakti"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		n, err := prakriya.ParseVacana(q.Get("vacana"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := prakriya.DeriveSubanta(stem, v, n)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, deriveResponse{Form: p.Text(), Steps: p.History()})
	}
}

func handleDeriveVerbal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		root := q.Get("dhatu")
		if root == "" {
			writeError(w, http.StatusBadRequest, "missing 'dhatu' query parameter")
			return
		}
		g, err := prakriya.ParseGana(q.Get("gana"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		la, err := prakriya.ParseLakara(q.Get("lakara"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pu, err := prakriya.ParsePurusha(q.Get("purusha"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		va, err := prakriya.ParseVacana(q.Get("vacana"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := prakriya.DeriveTinanta(prakriya.Dhatu{Text: root, Gana: g}, la, pu, va)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, deriveResponse{Form: p.Text(), Steps: p.History()})
	}
}

func handleCombine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		left, right := q.Get("left"), q.Get("right")
		if left == "" || right == "" {
			writeError(w, http.StatusBadRequest, "missing 'left' or 'right' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, combineResponse{Result: sandhi.Combine(left, right)})
	}
}

func handleSplit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		pairs := sandhi.Split(text)
		out := make([]pairJSON, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, pairJSON{Left: p.Left, Right: p.Right})
		}
		writeJSON(w, http.StatusOK, splitResponse{Pairs: out})
	}
}

func handleSegment(seg *cheda.Segmenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		results := seg.Segment(text)
		status := http.StatusOK
		if len(results) == 0 {
			status = http.StatusNotFound
		}
		out := make([]segmentationJSON, 0, len(results))
		for _, s := range results {
			out = append(out, segmentationJSON{Words: s.Words})
		}
		writeJSON(w, status, segmentResponse{Results: out})
	}
}

func handleTransliterate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		q := r.URL.Query()
		text := q.Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		from, err := lipi.ParseScheme(q.Get("from"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		to, err := lipi.ParseScheme(q.Get("to"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, transliterateResponse{Result: lipi.Convert(text, from, to)})
	}
}

// ---- request logging ----------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	lexiconPath := flag.String("lexicon", "", "path to a YAML lexicon file (default: built-in word list)")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	lex := kosha.Builtin()
	if *lexiconPath != "" {
		lex, err = kosha.LoadFile(*lexiconPath)
		if err != nil {
			log.Fatal("failed to load lexicon", zap.Error(err))
		}
	}
	log.Info("lexicon ready", zap.Int("entries", lex.Len()))

	seg := cheda.New(lex, cheda.WithLogger(log.Named("cheda")))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/derive/nominal", handleDeriveNominal())
	mux.HandleFunc("/api/derive/verbal", handleDeriveVerbal())
	mux.HandleFunc("/api/sandhi/combine", handleCombine())
	mux.HandleFunc("/api/sandhi/split", handleSplit())
	mux.HandleFunc("/api/segment", handleSegment(seg))
	mux.HandleFunc("/api/transliterate", handleTransliterate())

	handler := cors.Default().Handler(logRequests(log, mux))

	log.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
