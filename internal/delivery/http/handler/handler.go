package handler

import (
	"net/http"
	"strconv"

	"go-medical-appointment/internal/delivery/http/middleware"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// currentActor writes 401 and returns false when the request is unauthenticated
func currentActor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return entity.Actor{}, false
	}
	return actor, true
}

// pathUUID parses the {name} route variable, writing 400 on failure
func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+label+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}
