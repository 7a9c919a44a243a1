// Package validate holds the shared request validator. go-playground
// caches struct metadata, so a single instance serves all handlers.
package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func Struct(s any) error {
	return v.Struct(s)
}

// FieldErrors flattens validator errors into field → reason pairs for
// the response envelope's data slot.
func FieldErrors(err error) map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
