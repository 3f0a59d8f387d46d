package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := LoginRequest{
		Email:    "  admin@example.com  ",
		Password: "pass1234",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "admin@example.com", req.Email)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	remark := "vip <script>alert('x')</script> customer"
	req := UpdateAccountRequest{
		Remark: &remark,
	}
	SanitizeStruct(&req)

	assert.Contains(t, *req.Remark, "&lt;script&gt;")
	assert.NotContains(t, *req.Remark, "<script>")
}

func TestSanitizeStruct_LeavesPasswordsAlone(t *testing.T) {
	password := "  p<a>ss&word  "
	req := UpdateAccountRequest{
		Password: &password,
	}
	SanitizeStruct(&req)

	// Escaping or trimming a password would silently change the credential.
	assert.Equal(t, "  p<a>ss&word  ", *req.Password)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	name := "  Alice  "
	req := UpdateAccountRequest{
		DisplayName: &name,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Alice", *req.DisplayName)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := UpdateAccountRequest{}
	SanitizeStruct(&req)
	assert.Nil(t, req.DisplayName)
	assert.Nil(t, req.Remark)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"user-001",
		"USER_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"user 001",    // space
		"user<001>",   // angle brackets
		"user;DROP",   // semicolon
		"",            // empty
		"hello world", // space
		"user\n001",   // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
