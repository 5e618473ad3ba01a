package people

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
	r.Get("/people/", listPeopleHandler(svc, log))
	r.Post("/people/", createPersonHandler(svc, log))
	r.Put("/people/", updatePersonByBodyHandler(svc, log))

	// Instancia
	r.Get("/people/{personID:[0-9]+}/", getPersonHandler(svc, log))
	r.Put("/people/{personID:[0-9]+}/", updatePersonHandler(svc, log))
}

// personResponse es la representación plana de una persona.
type personResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
}

// ownedPetResponse es una mascota embebida bajo su dueño; owner va como id.
type ownedPetResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Owner int64  `json:"owner"`
}

type personWithPetsResponse struct {
	personResponse
	Pets []ownedPetResponse `json:"pets"`
}

type peopleListResponse struct {
	People []personWithPetsResponse `json:"people"`
}

type personDetailResponse struct {
	Person personWithPetsResponse `json:"person"`
}

// updatePersonByBodyRequest es el PUT de colección: el id viaja en el body.
type updatePersonByBodyRequest struct {
	ID *int64 `json:"id"`
	model.PersonPatch
}

type errorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

// listPeopleHandler godoc
// @Summary Listar personas
// @Description Devuelve todas las personas, cada una con sus mascotas embebidas.
// @Tags people
// @Produce json
// @Success 200 {object} peopleListResponse
// @Failure 500 {object} errorResponse
// @Router /people/ [get]
func listPeopleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		out := make([]personWithPetsResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toPersonWithPets(d))
		}
		writeJSON(w, http.StatusOK, peopleListResponse{People: out})
	}
}

// createPersonHandler godoc
// @Summary Crear persona
// @Description Crea una persona. first_name y last_name son obligatorios (máx. 32 caracteres); age es opcional (default 0).
// @Tags people
// @Accept json
// @Produce json
// @Param payload body model.PersonFields true "Datos de la persona"
// @Success 200 {object} personResponse
// @Failure 400 {object} errorResponse "invalid json / validation failed"
// @Router /people/ [post]
func createPersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in model.PersonFields
		if err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &in); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

// updatePersonByBodyHandler godoc
// @Summary Actualizar persona (id en el body)
// @Description Actualización parcial; el body debe traer el id de una persona existente.
// @Tags people
// @Accept json
// @Produce json
// @Param payload body updatePersonByBodyRequest true "id + campos a modificar"
// @Success 200 {object} personResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "person does not exist"
// @Router /people/ [put]
func updatePersonByBodyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePersonByBodyRequest
		err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req)
		if req.ID == nil {
			err = model.WithField(err, "id", "this field is required")
		}
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), *req.ID, req.PersonPatch)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

// getPersonHandler godoc
// @Summary Obtener persona
// @Description Devuelve la persona con sus mascotas.
// @Tags people
// @Produce json
// @Param personID path int true "ID de la persona"
// @Success 200 {object} personDetailResponse
// @Failure 404 {object} errorResponse "person does not exist"
// @Router /people/{personID}/ [get]
func getPersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := personID(r)
		if !ok {
			writeServiceError(w, r, log, model.ErrNotFound)
			return
		}

		d, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, personDetailResponse{Person: toPersonWithPets(d)})
	}
}

// updatePersonHandler godoc
// @Summary Actualizar persona
// @Description Actualización parcial: los campos ausentes no se tocan.
// @Tags people
// @Accept json
// @Produce json
// @Param personID path int true "ID de la persona"
// @Param payload body model.PersonPatch true "Campos a modificar"
// @Success 200 {object} personResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "person does not exist"
// @Router /people/{personID}/ [put]
func updatePersonHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := personID(r)
		if !ok {
			writeServiceError(w, r, log, model.ErrNotFound)
			return
		}

		var patch model.PersonPatch
		if err := model.DecodeValid(http.MaxBytesReader(w, r.Body, maxBodyBytes), &patch); err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		p, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

// el patrón de la ruta ya garantiza dígitos; solo puede fallar por overflow.
func personID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "personID"), 10, 64)
	return id, err == nil
}

func toPersonResponse(p model.Person) personResponse {
	return personResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
	}
}

func toPersonWithPets(d Detail) personWithPetsResponse {
	pets := make([]ownedPetResponse, 0, len(d.Pets))
	for _, pet := range d.Pets {
		pets = append(pets, ownedPetResponse{
			ID:    pet.ID,
			Name:  pet.Name,
			Age:   pet.Age,
			Owner: pet.OwnerID,
		})
	}
	return personWithPetsResponse{
		personResponse: toPersonResponse(d.Person),
		Pets:           pets,
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
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "person does not exist"})
	default:
		log.Error("people request failed", map[string]any{
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
