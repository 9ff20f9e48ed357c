package utils

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response types understood by the frontend.
const (
	TypeSuccess           = "success"
	TypeError             = "error"
	TypeNotFound          = "not_found"
	TypeUserDeactivated   = "user_deactivated"
	TypeRoleDeactivated   = "rol_deactivated"
	TypePasswordIncorrect = "password_incorrect"
)

// Message is the {msg, type} envelope every non-data response uses.
type Message struct {
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ResponseJSON writes any payload with the given status code.
func ResponseJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	render.Status(r, code)
	render.JSON(w, r, payload)
}

// ResponseMessage writes a {msg, type} body.
func ResponseMessage(w http.ResponseWriter, r *http.Request, code int, msgType, msg string) {
	ResponseJSON(w, r, code, Message{Msg: msg, Type: msgType})
}

// ------------- Success responses -------------

// returns 200 OK with a raw payload
func ResponseData(w http.ResponseWriter, r *http.Request, data any) {
	ResponseJSON(w, r, http.StatusOK, data)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusOK, TypeSuccess, msg)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusCreated, TypeSuccess, msg)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusBadRequest, TypeError, msg)
}

// returns 403 Forbidden with a specific type
func ResponseForbidden(w http.ResponseWriter, r *http.Request, msgType, msg string) {
	ResponseMessage(w, r, http.StatusForbidden, msgType, msg)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusNotFound, TypeNotFound, msg)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusConflict, TypeError, msg)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, r *http.Request, msg string) {
	ResponseMessage(w, r, http.StatusInternalServerError, TypeError, msg)
}
