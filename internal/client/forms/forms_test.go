package forms

import "testing"

func TestCheck_LoginFormValid(t *testing.T) {
	problems := Check(LoginForm{Email: "admin@test.com", Password: "admin123"})
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestCheck_LoginFormInvalid(t *testing.T) {
	tests := []struct {
		name  string
		form  LoginForm
		field string
		want  string
	}{
		{
			name:  "missing_email",
			form:  LoginForm{Password: "admin123"},
			field: "email",
			want:  "email is required",
		},
		{
			name:  "malformed_email",
			form:  LoginForm{Email: "not-an-email", Password: "admin123"},
			field: "email",
			want:  "please enter a valid email",
		},
		{
			name:  "short_password",
			form:  LoginForm{Email: "admin@test.com", Password: "abc"},
			field: "password",
			want:  "password must be at least 6 characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			problems := Check(tc.form)
			got, ok := problems[tc.field]
			if !ok {
				t.Fatalf("expected problem on %q, got %v", tc.field, problems)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCheck_UserFormRole(t *testing.T) {
	problems := Check(UserForm{Name: "Alice", Email: "alice@test.com", Role: "superadmin"})
	want := "role must be one of: admin manager user"
	if problems["role"] != want {
		t.Fatalf("expected %q, got %v", want, problems)
	}
}

func TestCheck_UserFormOptionalFields(t *testing.T) {
	problems := Check(UserForm{Name: "Alice", Email: "alice@test.com", Role: "manager"})
	if len(problems) != 0 {
		t.Fatalf("phone and department are optional, got %v", problems)
	}
}

func TestCheck_ProjectForm(t *testing.T) {
	problems := Check(ProjectForm{Title: "ab", Status: "cancelled", Manager: "Alice"})
	if problems["title"] != "title must be at least 3 characters" {
		t.Fatalf("unexpected title message: %v", problems)
	}
	if problems["status"] != "status must be one of: active completed on-hold" {
		t.Fatalf("unexpected status message: %v", problems)
	}
	if problems["startdate"] != "startdate is required" {
		t.Fatalf("unexpected startdate message: %v", problems)
	}

	problems = Check(ProjectForm{Title: "Replatform", Status: "active", Manager: "Alice", StartDate: "2026-01-01"})
	if len(problems) != 0 {
		t.Fatalf("expected valid project form, got %v", problems)
	}
}
