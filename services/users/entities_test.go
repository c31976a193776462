package main

import (
	"testing"
	"time"
)

func TestNewUser(t *testing.T) {
	// Arrange
	name := "Amanda Rocha"
	email := "amanda@perfulandia.test"
	role := RoleManager

	// Act
	user := NewUser(name, email, role)

	// Assert
	if user.ID != 0 {
		t.Errorf("Expected ID 0 before persistence, got %d", user.ID)
	}
	if user.Name != name {
		t.Errorf("Expected Name %s, got %s", name, user.Name)
	}
	if user.Email != email {
		t.Errorf("Expected Email %s, got %s", email, user.Email)
	}
	if user.Role != role {
		t.Errorf("Expected Role %s, got %s", role, user.Role)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if user.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}

	// Verify that CreatedAt is within a reasonable time range
	now := time.Now()
	if user.CreatedAt.After(now) || user.CreatedAt.Before(now.Add(-time.Second)) {
		t.Error("CreatedAt is not within expected time range")
	}
}

func TestNewUser_DefaultRole(t *testing.T) {
	// Act
	user := NewUser("Bruno Vidal", "bruno@perfulandia.test", "")

	// Assert
	if user.Role != RoleUser {
		t.Errorf("Expected default Role %s, got %s", RoleUser, user.Role)
	}
}

func TestRoles(t *testing.T) {
	// Test that constants are defined correctly
	if RoleAdmin != "ADMIN" {
		t.Errorf("Expected RoleAdmin to be 'ADMIN', got %s", RoleAdmin)
	}
	if RoleManager != "MANAGER" {
		t.Errorf("Expected RoleManager to be 'MANAGER', got %s", RoleManager)
	}
	if RoleUser != "USER" {
		t.Errorf("Expected RoleUser to be 'USER', got %s", RoleUser)
	}
}
