package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")

	t.Run("wraps cause", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb timeout" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})

	t.Run("http body hides cause", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		body := e.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("DOCUMENT_RESOURCE_NOT_FOUND", "document not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound || e.Unwrap() != nil {
			t.Fatalf("unexpected error: %+v", e)
		}
		if e.Error() != "DOCUMENT_RESOURCE_NOT_FOUND: document not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})
}
