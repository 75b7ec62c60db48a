package handlers

import "github.com/gin-gonic/gin"

// respondData wraps successful payloads in the {"data": ...} envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// respondError emits the {"error": {"message", "code"}} body.
func respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message, "code": code}})
}
