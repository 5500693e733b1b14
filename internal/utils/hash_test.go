package utils

import (
	"net/url"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not be the plaintext")
	}
	if !CheckPassword(hash, "password123") {
		t.Error("CheckPassword rejects the right password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword accepts a wrong password")
	}
}

func TestQueryInt(t *testing.T) {
	q := url.Values{"employee_id": {"7"}, "bad": {"x"}}
	if got := QueryInt(q, "employee_id", 0); got != 7 {
		t.Errorf("QueryInt valid = %d", got)
	}
	if got := QueryInt(q, "bad", 3); got != 3 {
		t.Errorf("QueryInt invalid = %d, want default", got)
	}
	if got := QueryInt(q, "missing", 5); got != 5 {
		t.Errorf("QueryInt missing = %d, want default", got)
	}
}
