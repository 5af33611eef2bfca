package models

import "testing"

func TestParseUserRole(t *testing.T) {
	for _, valid := range []string{"donor", "creator", "admin"} {
		if _, err := ParseUserRole(valid); err != nil {
			t.Errorf("ParseUserRole(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Admin", "superuser"} {
		if _, err := ParseUserRole(invalid); err == nil {
			t.Errorf("ParseUserRole(%q) expected error", invalid)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	var u User
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.PasswordHash == "s3cret-pass" {
		t.Fatal("password must not be stored in plain text")
	}
	if !u.CheckPassword("s3cret-pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if u.CheckPassword("wrong-pass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
