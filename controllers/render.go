package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// badRequest writes the uniform client error body. details is either a
// plain string or a field -> message map from the validation layer.
func badRequest(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "bad request",
		"error":   details,
	})
}

// storageFailure logs the underlying error and writes a 500. Storage
// faults are the one class of failure not reported as a 400.
func storageFailure(c *gin.Context, err error) {
	log.Printf("storage failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "internal server error",
		"error":   "storage failure",
	})
}

// isUniqueViolation reports whether err is a duplicate-key error from the
// store. Works with both PostgreSQL and SQLite error strings, so the same
// check serves production and the test database.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
