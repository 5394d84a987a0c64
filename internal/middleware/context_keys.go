package middleware

import "github.com/gin-gonic/gin"

// operatorIDKey is the key used to store the acting operator's identifier in
// the Gin context. Authentication itself lives outside the engine; the outer
// layer (reverse proxy, gateway) is expected to set the header.
const operatorIDKey = contextKey("operatorID")

// OperatorHeader is the request header carrying the operator identifier.
const OperatorHeader = "X-Operator-ID"

// OperatorMiddleware copies the operator identifier from the request header
// into the Gin context, defaulting to "system" when absent.
func OperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := c.GetHeader(OperatorHeader)
		if operator == "" {
			operator = "system"
		}
		c.Set(string(operatorIDKey), operator)
		c.Next()
	}
}

// GetOperatorFromContext retrieves the operator identifier from the Gin context.
func GetOperatorFromContext(c *gin.Context) string {
	val, exists := c.Get(string(operatorIDKey))
	if !exists {
		return "system"
	}
	operator, ok := val.(string)
	if !ok {
		return "system"
	}
	return operator
}
