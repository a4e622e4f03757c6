package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))

		// Invocar comportamiento (eat, sleep, meow, bark)
		ar.Post("/{animalID}/actions/{action}", performActionHandler(svc))
	})
}

type createAnimalRequest struct {
	Kind     string  `json:"kind"`
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	FurColor string  `json:"fur_color"`
	Color    string  `json:"color"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	FurColor *string `json:"fur_color"`
	Color    *string `json:"color"`
}

type animalResponse struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	FurColor  string    `json:"fur_color,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type actionResponse struct {
	AnimalID string `json:"animal_id"`
	Action   Action `json:"action"`
	Output   string `json:"output"`
}

// createAnimalHandler crea una entidad.
// @Summary Crear animal
// @Tags animals
// @Accept json
// @Produce json
// @Param body body createAnimalRequest true "Animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			Kind:     req.Kind,
			Name:     req.Name,
			Age:      req.Age,
			FurColor: req.FurColor,
			Color:    req.Color,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(rec))
	}
}

// @Summary Listar animales
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toAnimalResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "Animal ID"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(rec))
	}
}

// @Summary Actualizar animal
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param body body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string
// @Failure 422 {string} string
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "animalID"), UpdateProfileInput{
			Name:     req.Name,
			Age:      req.Age,
			FurColor: req.FurColor,
			Color:    req.Color,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(rec))
	}
}

// @Summary Invocar comportamiento
// @Tags animals
// @Produce json
// @Param animalID path string true "Animal ID"
// @Param action path string true "eat | sleep | meow | bark"
// @Success 200 {object} actionResponse
// @Failure 404 {string} string
// @Failure 422 {string} string
// @Router /animals/{animalID}/actions/{action} [post]
func performActionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID := chi.URLParam(r, "animalID")

		action, err := ParseAction(chi.URLParam(r, "action"))
		if err != nil {
			writeError(w, err)
			return
		}

		out, err := svc.Perform(r.Context(), animalID, action)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			AnimalID: animalID,
			Action:   action,
			Output:   out,
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidAttribute), errors.Is(err, ErrUnknownKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrImmutable), errors.Is(err, ErrUnsupportedAction):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(r Record) animalResponse {
	return animalResponse{
		ID:        r.ID,
		Kind:      r.Kind,
		Name:      r.Name,
		Age:       r.Age,
		FurColor:  r.FurColor,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
