package validate

import "testing"

type productInput struct {
	Name     string `json:"name" validate:"required,max=10"`
	Category string `json:"category" validate:"required,in=a,b,c"`
	Email    string `json:"email" validate:"nullable,email"`
	Stock    int    `json:"stock" validate:"gte=0,lte=100"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&productInput{Name: "ok", Category: "b", Stock: 5})
	if HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&productInput{Category: "a"})
	if errs["name"] == "" {
		t.Fatalf("expected error for missing name, got %v", errs)
	}
}

func TestStructIn(t *testing.T) {
	errs := Struct(&productInput{Name: "ok", Category: "z"})
	if errs["category"] == "" {
		t.Fatalf("expected error for category not in list, got %v", errs)
	}
}

func TestStructNullableSkips(t *testing.T) {
	errs := Struct(&productInput{Name: "ok", Category: "a", Email: ""})
	if errs["email"] != "" {
		t.Fatalf("empty nullable email must pass, got %v", errs)
	}
	errs = Struct(&productInput{Name: "ok", Category: "a", Email: "not-an-email"})
	if errs["email"] == "" {
		t.Fatal("malformed email must fail")
	}
}

func TestStructBounds(t *testing.T) {
	errs := Struct(&productInput{Name: "ok", Category: "a", Stock: 101})
	if errs["stock"] == "" {
		t.Fatal("stock above lte bound must fail")
	}
	errs = Struct(&productInput{Name: "this name is far too long", Category: "a"})
	if errs["name"] == "" {
		t.Fatal("name above max length must fail")
	}
}
