package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dinet/pedidos-importacion/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthJWT — bearer JWT firmado con HMAC-SHA256 y secreto compartido.
// Cualquier token ausente o inválido devuelve el sobre de error 401.
func AuthJWT(secreto string) gin.HandlerFunc {
	clave := []byte(secreto)
	return func(c *gin.Context) {
		const prefijo = "Bearer "

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, prefijo) {
			httpx.AbortConError(c, http.StatusUnauthorized, "UNAUTHORIZED", "JWT requerido o inválido")
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(auth, prefijo), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return clave, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			httpx.AbortConError(c, http.StatusUnauthorized, "UNAUTHORIZED", "JWT requerido o inválido")
			return
		}

		c.Next()
	}
}
