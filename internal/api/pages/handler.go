// Package pages serves the hosted checkout UI. Card validation (Luhn,
// expiry, CVV) and the simulated 3-D-Secure step live client-side in
// the templates; the pages talk to the public JSON endpoints only.
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	}
}

func Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "payment.html", nil)
	}
}

func Success() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "success.html", nil)
	}
}
