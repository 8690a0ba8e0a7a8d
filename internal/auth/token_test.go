package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	email := "ana@earth.com"

	tok, err := IssueToken(email, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	subject, err := VerifySubject(tok, secret)
	if err != nil {
		t.Fatalf("VerifySubject error: %v", err)
	}
	if subject != email {
		t.Fatalf("subject mismatch: got %q want %q", subject, email)
	}
}

func TestVerifySubject_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("old@earth.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = VerifySubject(tok, secret)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifySubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("someone@earth.com", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = VerifySubject(tok, []byte("wrong-secret"))
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifySubject_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := VerifySubject("not.a.jwt", []byte("k"))
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestVerifySubject_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	_, err = VerifySubject(tok, secret)
	if err == nil {
		t.Fatalf("expected error for empty subject, got nil")
	}
}
