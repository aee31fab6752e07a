package starpoint

import (
	"errors"
	"testing"
)

func TestNewCollectionRef_IDOnly(t *testing.T) {
	ref, err := NewCollectionRef("abc", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.IsZero() {
		t.Error("expected a non-zero ref")
	}
	if err := ref.Validate(); err != nil {
		t.Errorf("expected ref to validate, got %v", err)
	}
}

func TestNewCollectionRef_NameOnly(t *testing.T) {
	ref, err := NewCollectionRef("", "documents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ref.Validate(); err != nil {
		t.Errorf("expected ref to validate, got %v", err)
	}
}

func TestNewCollectionRef_NeitherProvided(t *testing.T) {
	_, err := NewCollectionRef("", "")

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrNoCollectionIdentifier) {
		t.Errorf("expected ErrNoCollectionIdentifier, got %v", err)
	}
}

func TestNewCollectionRef_BothProvided(t *testing.T) {
	_, err := NewCollectionRef("abc", "documents")

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrMultipleCollectionIdentifiers) {
		t.Errorf("expected ErrMultipleCollectionIdentifiers, got %v", err)
	}
}

func TestCollectionRef_ZeroValueFailsValidation(t *testing.T) {
	var ref CollectionRef

	err := ref.Validate()
	if !errors.Is(err, ErrNoCollectionIdentifier) {
		t.Errorf("expected ErrNoCollectionIdentifier, got %v", err)
	}
}

func TestCollectionRef_Constructors(t *testing.T) {
	byID := CollectionByID("abc")
	if byID.idPtr() == nil || *byID.idPtr() != "abc" {
		t.Errorf("expected id abc, got %v", byID.idPtr())
	}
	if byID.namePtr() != nil {
		t.Errorf("expected nil name, got %v", *byID.namePtr())
	}

	byName := CollectionByName("documents")
	if byName.namePtr() == nil || *byName.namePtr() != "documents" {
		t.Errorf("expected name documents, got %v", byName.namePtr())
	}
	if byName.idPtr() != nil {
		t.Errorf("expected nil id, got %v", *byName.idPtr())
	}
}

func TestNewVector_FillsDimensionality(t *testing.T) {
	v := NewVector([]float32{0.1, 0.2, 0.3})

	if v.Dimensionality != 3 {
		t.Errorf("expected dimensionality 3, got %d", v.Dimensionality)
	}
	if len(v.Values) != 3 {
		t.Errorf("expected 3 values, got %d", len(v.Values))
	}
}
