package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/julesc00/planetaryApi/internal/services"
	"github.com/julesc00/planetaryApi/internal/store"
	"github.com/julesc00/planetaryApi/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	formFieldPlanetID   = "planet_id"
	formFieldPlanetName = "planet_name"
	formFieldPlanetType = "planet_type"
	formFieldHomeStar   = "home_star"
	formFieldMass       = "mass"
	formFieldRadius     = "radius"
	formFieldDistance   = "distance"
)

// PlanetHandler provides HTTP handlers for planets.
type PlanetHandler struct {
	planetService *services.PlanetService
}

// NewPlanetHandler constructs a handler with the provided service.
func NewPlanetHandler(planetService *services.PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// PlanetRouter registers planet routes on the given router.
func PlanetRouter(
	r chi.Router,
	planetService *services.PlanetService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewPlanetHandler(planetService)

	r.Get("/planets", handler.ListPlanets)
	r.Get("/planet_detail/{planetID}", handler.PlanetDetail)
	if authMiddleware != nil {
		r.With(authMiddleware).Post("/add_planet", handler.AddPlanet)
		r.With(authMiddleware).Put("/update_planet", handler.UpdatePlanet)
		r.With(authMiddleware).Delete("/remove_planet/{planetID}", handler.RemovePlanet)
	} else {
		r.Post("/add_planet", handler.AddPlanet)
		r.Put("/update_planet", handler.UpdatePlanet)
		r.Delete("/remove_planet/{planetID}", handler.RemovePlanet)
	}
}

func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.planetService.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to list planets")
		return
	}

	writeJSON(w, http.StatusOK, planets)
}

func (h *PlanetHandler) PlanetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanetID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	planet, err := h.planetService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That planet does not exist")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to fetch planet")
		return
	}

	writeJSON(w, http.StatusOK, planet)
}

func (h *PlanetHandler) AddPlanet(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlanetForm(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	// A cases.Caser is not safe for concurrent use; build one per request.
	name := cases.Title(language.Und).String(req.Name)

	if _, err := h.planetService.GetByName(r.Context(), name); err == nil {
		writeMessage(w, http.StatusConflict, "There is already a planet by that name")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusInternalServerError, "failed to check planet")
		return
	}

	_, err = h.planetService.Create(r.Context(), types.Planet{
		Name:     name,
		Type:     req.Type,
		HomeStar: req.HomeStar,
		Mass:     req.Mass,
		Radius:   req.Radius,
		Distance: req.Distance,
	})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to create planet")
		return
	}

	writeMessage(w, http.StatusCreated, "You added a planet")
}

func (h *PlanetHandler) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue(formFieldPlanetID)))
	if err != nil || id < 1 {
		writeMessage(w, http.StatusBadRequest, "invalid planet id")
		return
	}

	req, err := parsePlanetForm(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.planetService.Update(r.Context(), types.Planet{
		ID:       id,
		Name:     req.Name,
		Type:     req.Type,
		HomeStar: req.HomeStar,
		Mass:     req.Mass,
		Radius:   req.Radius,
		Distance: req.Distance,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That planet does not exist")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to update planet")
		return
	}

	writeMessage(w, http.StatusAccepted, "You updated a planet")
}

func (h *PlanetHandler) RemovePlanet(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanetID(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.planetService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "That planet does not exist")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "failed to delete planet")
		return
	}

	writeMessage(w, http.StatusAccepted, "You deleted a planet")
}

// PlanetUpsertRequest represents the parsed planet form payload.
type PlanetUpsertRequest struct {
	Name     string
	Type     string
	HomeStar string
	Mass     float64
	Radius   float64
	Distance float64
}

func parsePlanetID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "planetID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid planet id")
	}
	return id, nil
}

func parsePlanetForm(r *http.Request) (PlanetUpsertRequest, error) {
	if err := r.ParseForm(); err != nil {
		return PlanetUpsertRequest{}, errors.New("invalid form")
	}

	name := strings.TrimSpace(r.PostFormValue(formFieldPlanetName))
	if name == "" {
		return PlanetUpsertRequest{}, errors.New("planet_name is required")
	}

	mass, err := parseFormFloat(r, formFieldMass)
	if err != nil {
		return PlanetUpsertRequest{}, errors.New("invalid mass")
	}

	radius, err := parseFormFloat(r, formFieldRadius)
	if err != nil {
		return PlanetUpsertRequest{}, errors.New("invalid radius")
	}

	distance, err := parseFormFloat(r, formFieldDistance)
	if err != nil {
		return PlanetUpsertRequest{}, errors.New("invalid distance")
	}

	return PlanetUpsertRequest{
		Name:     name,
		Type:     strings.TrimSpace(r.PostFormValue(formFieldPlanetType)),
		HomeStar: strings.TrimSpace(r.PostFormValue(formFieldHomeStar)),
		Mass:     mass,
		Radius:   radius,
		Distance: distance,
	}, nil
}

func parseFormFloat(r *http.Request, field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(r.PostFormValue(field)), 64)
}
