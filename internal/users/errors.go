package users

import (
	"errors"
	"net/http"
)

// Domain errors for registry operations. Messages are user-facing and travel
// verbatim in error payloads and bulk ingest reports.
var (
	ErrNotFound          = errors.New("usuario no encontrado")
	ErrNoResults         = errors.New("no se encontraron usuarios")
	ErrDuplicateDocument = errors.New("el documento de identidad ya esta registrado")
	ErrDuplicateEmail    = errors.New("el email ya esta registrado")
	ErrInvalidDocument   = errors.New("documento de identidad invalido: debe ser alfanumerico de 6 a 15 caracteres")
	ErrEmptyName         = errors.New("el nombre es requerido")
	ErrInvalidEmail      = errors.New("email invalido")
	ErrInvalidDate       = errors.New("fecha de nacimiento invalida: use el formato YYYY-MM-DD")
	ErrFutureDate        = errors.New("la fecha de nacimiento debe ser anterior a la fecha actual")
	ErrEmptyPatch        = errors.New("no se enviaron campos para actualizar")
	ErrInvalidBody       = errors.New("cuerpo de la peticion invalido")
	ErrInvalidCSV        = errors.New("csv invalido: faltan columnas requeridas")
	ErrNoPhoto           = errors.New("el usuario no tiene foto")
	ErrNoFile            = errors.New("no se envio ningun archivo")
	ErrInvalidPhotoType  = errors.New("tipo de archivo no permitido: use jpeg, png o webp")
)

// MapHTTPStatus maps registry domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrNoResults),
		errors.Is(err, ErrNoPhoto):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateDocument),
		errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidDocument),
		errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrFutureDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrEmptyPatch),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrInvalidCSV),
		errors.Is(err, ErrNoFile),
		errors.Is(err, ErrInvalidPhotoType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
