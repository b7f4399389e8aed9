package handlers

import "github.com/gin-gonic/gin"

var statusMessages = map[int]string{
	400: "Bad Request",
	404: "Resource Not Found",
	422: "Unprocessable",
	500: "Internal Server Error",
}

// respondError writes the uniform error envelope. Every failure path in
// the API goes through here so clients always get the same shape.
func respondError(c *gin.Context, code int) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   code,
		"message": statusMessages[code],
	})
}
