package controllers

import "github.com/gin-gonic/gin"

// sessionID identifies the planning session state belongs to. Authenticated
// requests use the account id; anonymous planning sessions pass an
// X-Session-Id header.
func sessionID(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	return "anonymous"
}
