package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"people-pets-api/internal/domain/model"
	"people-pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	// Colección
	r.Get("/pets/", listPetsHandler(svc, log))
	r.Post("/pets/", createPetHandler(svc, log))
	r.Put("/pets/", updatePetByBodyHandler(svc, log))

	// Instancia
	r.Get("/pets/{petID:[0-9]+}/", getPetHandler(svc, log))
	r.Put("/pets/{petID:[0-9]+}/", updatePetHandler(svc, log))
}

// ownerResponse es el dueño embebido en cada mascota.
type ownerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
}

type petResponse struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Age   int           `json:"age"`
	Owner ownerResponse `json:"owner"`
}

type petsListResponse struct {
	Pets []petResponse `json:"pets"`
}

type petDetailResponse struct {
	Pet petResponse `json:"pet"`
}

// updatePetByBodyRequest es el PUT de colección: el id viaja en el body.
type updatePetByBodyRequest struct {
	ID *int64 `json:"id"`
	model.PetPatch
}

type errorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas con su dueño embebido.
// @Tags pets
// @Produce json
// @Success 200 {object} petsListResponse
// @Failure 500 {object} errorResponse
// @Router /pets/ [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toPetResponse(d))
		}
		writeJSON(w, http.StatusOK, petsListResponse{Pets: out})
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota. name (máx. 32) y owner (id de una persona existente) son obligatorios.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body model.PetFields true "Datos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse "invalid json / validation failed / owner inexistente"
// @Router /pets/ [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in model.PetFields
		if err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &in); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		d, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(d))
	}
}

// updatePetByBodyHandler godoc
// @Summary Actualizar mascota (id en el body)
// @Description Actualización parcial; el body debe traer el id de una mascota existente.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body updatePetByBodyRequest true "id + campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "pet does not exist"
// @Router /pets/ [put]
func updatePetByBodyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetByBodyRequest
		err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req)
		if req.ID == nil {
			err = model.WithField(err, "id", "this field is required")
		}
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		d, err := svc.Update(r.Context(), *req.ID, req.PetPatch)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(d))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Description Devuelve la mascota con su dueño embebido.
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petDetailResponse
// @Failure 404 {object} errorResponse "pet does not exist"
// @Router /pets/{petID}/ [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(r)
		if !ok {
			writeServiceError(w, r, log, model.ErrNotFound)
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, petDetailResponse{Pet: toPetResponse(d)})
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualización parcial: los campos ausentes no se tocan. Si viene owner, debe existir.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body model.PetPatch true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "pet does not exist"
// @Router /pets/{petID}/ [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petID(r)
		if !ok {
			writeServiceError(w, r, log, model.ErrNotFound)
			return
		}

		var patch model.PetPatch
		if err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &patch); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		d, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(d))
	}
}

func petID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	return id, err == nil
}

func toPetResponse(d Detail) petResponse {
	return petResponse{
		ID:   d.Pet.ID,
		Name: d.Pet.Name,
		Age:  d.Pet.Age,
		Owner: ownerResponse{
			ID:        d.Owner.ID,
			FirstName: d.Owner.FirstName,
			LastName:  d.Owner.LastName,
			Age:       d.Owner.Age,
		},
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var (
		verr    *model.ValidationError
		tooLong *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLong):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, model.ErrInvalidJSON):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet does not exist"})
	default:
		log.Error("pets request failed", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
