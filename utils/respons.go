package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondOK writes a success body of the form {"message": ..., <fields>}.
// Extra fields are merged at the top level so every endpoint keeps the
// flat shape the mobile client expects.
func RespondOK(c *gin.Context, code int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(code, body)
}

// RespondError writes a failure body of the form {"error": ...}.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
