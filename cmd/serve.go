package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/constants"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/parse"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the identification server",
	Long:  `Runs the identification server`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

var limiter = rate.NewLimiter(rate.Limit(constants.RateLimitPerSecond), constants.RateLimitBurst)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeError(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(constants.RequestIDHeader, id)
		log.Printf("%s %s [%s]", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, detail string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func writeResult(w http.ResponseWriter, res model.Result) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleIdentify identifies a chord from note names or free text.
func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "could not read request body", http.StatusBadRequest)
		return
	}

	var input model.IdentifyRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "could not parse request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	notes := input.Notes
	if len(notes) == 0 && input.Text != "" {
		notes = parse.Notes(input.Text)
	}
	inversions := true
	if input.Inversions != nil {
		inversions = *input.Inversions
	}

	var res model.Result
	if input.LabelInversions {
		res = chord.MatchWithInversion(notes, input.Key)
	} else {
		res = chord.Match(notes, input.Key, inversions)
	}
	writeResult(w, res)
}

// HandleIdentifyNumeric identifies a chord from major scale degrees.
func HandleIdentifyNumeric(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "could not read request body", http.StatusBadRequest)
		return
	}

	var input model.NumericRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "could not parse request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	degrees := input.Degrees
	if len(degrees) == 0 && input.Text != "" {
		degrees, err = parse.NumericNotes(input.Text)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	inversions := true
	if input.Inversions != nil {
		inversions = *input.Inversions
	}

	writeResult(w, chord.MatchNumeric(degrees, input.Key, inversions))
}

// HandleKeys lists the twelve keys in pitch-class order.
func HandleKeys(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.KeysResponse{Keys: note.AllKeys()})
}

// HandleTemplates lists the catalog in declaration order.
func HandleTemplates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chord.Overview())
}

func newRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/identify/numeric", HandleIdentifyNumeric).Methods("POST")
	router.HandleFunc("/keys", HandleKeys).Methods("GET")
	router.HandleFunc("/templates", HandleTemplates).Methods("GET")
	return router
}

func serve() {
	// .env is optional; env vars win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	handler := c.Handler(requestIDMiddleware(rateLimitMiddleware(newRouter())))
	addr := ":" + constants.GetPort()
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
