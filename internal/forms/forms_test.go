package forms

import (
	"reflect"
	"strings"
	"testing"

	"github.com/yourorg/stockroom/internal/models"
)

func validProductForm() ProductForm {
	return ProductForm{
		Name:     "Widget",
		Price:    9.99,
		Category: "Tools",
		SKU:      "WID-1",
		Stock:    3,
		Status:   models.StatusActive,
	}
}

func TestValidProductFormPasses(t *testing.T) {
	if err := ValidateStruct(validProductForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductFormConstraints(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ProductForm)
		wantMsg string
	}{
		{"missing name", func(f *ProductForm) { f.Name = "" }, "name is required"},
		{"negative price", func(f *ProductForm) { f.Price = -1 }, "price must be at least 0"},
		{"negative stock", func(f *ProductForm) { f.Stock = -1 }, "stock must be at least 0"},
		{"bad status", func(f *ProductForm) { f.Status = "archived" }, "status must be one of"},
		{"missing sku", func(f *ProductForm) { f.SKU = "" }, "sku is required"},
	}
	for _, tc := range cases {
		f := validProductForm()
		tc.mutate(&f)
		err := ValidateStruct(f)
		if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
			t.Fatalf("%s: expected %q in error, got %v", tc.name, tc.wantMsg, err)
		}
	}
}

func TestLoginFormRequiresValidEmail(t *testing.T) {
	err := ValidateStruct(LoginForm{Email: "not-an-email", Password: "x"})
	if err == nil || !strings.Contains(err.Error(), "valid email") {
		t.Fatalf("expected email error, got %v", err)
	}
}

func TestRegisterFormPasswordRules(t *testing.T) {
	short := RegisterForm{Name: "Ann", Email: "a@x.com", Password: "abc", ConfirmPassword: "abc"}
	if err := ValidateStruct(short); err == nil || !strings.Contains(err.Error(), "at least 8") {
		t.Fatalf("expected min-length error, got %v", err)
	}

	mismatch := RegisterForm{Name: "Ann", Email: "a@x.com", Password: "abcdefgh", ConfirmPassword: "abcdefg!"}
	if err := ValidateStruct(mismatch); err == nil || !strings.Contains(err.Error(), "Passwords do not match") {
		t.Fatalf("expected mismatch error, got %v", err)
	}

	ok := RegisterForm{Name: "Ann", Email: "a@x.com", Password: "abcdefgh", ConfirmPassword: "abcdefgh"}
	if err := ValidateStruct(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" a", "b", "a", "", "b ", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestRequestDeduplicatesTags(t *testing.T) {
	f := validProductForm()
	f.Tags = []string{"x", "x", "y"}
	req := f.Request()
	if !reflect.DeepEqual(req.Tags, []string{"x", "y"}) {
		t.Fatalf("tags not deduplicated: %v", req.Tags)
	}
	if req.Name != f.Name || req.Price != f.Price || req.Status != f.Status {
		t.Fatalf("request fields not carried over: %+v", req)
	}
}
