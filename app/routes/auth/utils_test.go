package auth

import (
	"testing"

	"github.com/Aliyuabk/EMS/app/models"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("school123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "school123" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("school123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("jera123", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := GenerateSessionToken("admin-1", "jeraadmin", models.RoleJera)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.AdminID != "admin-1" || claims.Username != "jeraadmin" || claims.Role != models.RoleJera {
		t.Fatalf("claims do not match: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken("admin-1", "schooladmin", models.RoleSchool)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	tampered := token + "xx"
	if _, err := ValidateSessionToken(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}

	if _, err := ValidateSessionToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
