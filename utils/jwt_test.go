package utils

import "testing"

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")

	token, err := GenerateToken(42, "ESTUDIANTE")
	if err != nil {
		t.Fatalf("GenerateToken falló: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken falló: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id esperado 42, recibido %d", claims.UserID)
	}
	if claims.Rol != "ESTUDIANTE" {
		t.Errorf("rol esperado ESTUDIANTE, recibido %s", claims.Rol)
	}
}

func TestVerifyTokenConOtroSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-a")
	token, err := GenerateToken(1, "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken falló: %v", err)
	}

	t.Setenv("JWT_SECRET", "secreto-b")
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("un token firmado con otro secreto debe rechazarse")
	}
}

func TestVerifyTokenBasura(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-test")
	if _, err := VerifyToken("no-es-un-jwt"); err == nil {
		t.Fatal("un token malformado debe rechazarse")
	}
}
