package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the normalized role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return enum.RoleStaff
	}
	role, ok := roleVal.(enum.Role)
	if !ok {
		return enum.RoleStaff
	}
	return role
}

// IsOwner checks if the request user holds the owner role
func IsOwner(c *gin.Context) bool {
	return GetUserRole(c) == enum.RoleOwner
}
