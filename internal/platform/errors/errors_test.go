package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeTooManyRequests: http.StatusTooManyRequests,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
		ErrorCode(999):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("code %d: status %d want %d", code, got, want)
		}
	}
}

func TestError_MessageHidesCauseOnWire(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, ErrorCodeUnavailable, "history: valkey list")

	if err.Error() != "history: valkey list: unexpected EOF" {
		t.Fatalf("Error() = %q", err.Error())
	}
	w := WireFrom(err)
	if w.Code != ErrorCodeUnavailable || w.Message != "history: valkey list" {
		t.Fatalf("wire = %+v", w)
	}
	if Root(err) != io.ErrUnexpectedEOF {
		t.Fatalf("root = %v", Root(err))
	}
	if HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", HTTPStatus(err))
	}
}

func TestWireFrom_ForeignAndNil(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("nil wire = %+v", w)
	}
	w := WireFrom(fmt.Errorf("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestWithField_CopiesAndFindsWrapped(t *testing.T) {
	base := New(ErrorCodeValidation, "Texto muito longo. Máximo 1000 caracteres.")
	withField := WithField(base, "text")

	if e, _ := As(base); e.Field() != "" {
		t.Fatal("WithField mutated the original")
	}
	wrapped := fmt.Errorf("analyze: %w", withField)
	if CodeOf(wrapped) != ErrorCodeValidation {
		t.Fatalf("code through fmt wrap = %v", CodeOf(wrapped))
	}
	if WireFrom(wrapped).Field != "text" {
		t.Fatalf("field lost: %+v", WireFrom(wrapped))
	}

	foreign := io.EOF
	if WithField(foreign, "text") != foreign {
		t.Fatal("foreign error should pass through")
	}
}

func TestSugar(t *testing.T) {
	if CodeOf(JSONErrf("bad %s", "json")) != ErrorCodeJSON {
		t.Fatal("JSONErrf")
	}
	if CodeOf(PanicErrf("boom")) != ErrorCodePanic {
		t.Fatal("PanicErrf")
	}
	if e, _ := As(Unavailablef("valkey %s", "down")); e.Message() != "valkey down" {
		t.Fatalf("Unavailablef message = %q", e.Message())
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil *Error")
	}
}
