package httpx

import (
	"errors"
	"testing"
)

func TestNilSafetyErrorIfNil(t *testing.T) {
	t.Run("with a nil pointer", func(t *testing.T) {
		var input *apiResponse
		output, err := NilSafetyErrorIfNil(input)
		if !errors.Is(err, ErrIsNil) {
			t.Fatal("unexpected error", err)
		}
		if output != nil {
			t.Fatal("expected nil output")
		}
	})

	t.Run("with a nil map", func(t *testing.T) {
		var input map[string]string
		if _, err := NilSafetyErrorIfNil(input); !errors.Is(err, ErrIsNil) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with a nil slice", func(t *testing.T) {
		var input []string
		if _, err := NilSafetyErrorIfNil(input); !errors.Is(err, ErrIsNil) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with a non-nil pointer", func(t *testing.T) {
		input := &apiResponse{Name: "simone"}
		output, err := NilSafetyErrorIfNil(input)
		if err != nil {
			t.Fatal(err)
		}
		if output != input {
			t.Fatal("expected the same pointer")
		}
	})

	t.Run("with a non-nillable type", func(t *testing.T) {
		output, err := NilSafetyErrorIfNil(17)
		if err != nil {
			t.Fatal(err)
		}
		if output != 17 {
			t.Fatal("unexpected output")
		}
	})
}
