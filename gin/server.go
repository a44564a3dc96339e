package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps a gin engine and exposes the RegisterHandler interface the
// transport packages expect. The browser client is served from another
// origin, hence the permissive CORS.
type Server struct {
	router *gin.Engine
}

func New() *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/pdfroulette/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{router: router}
}

// RegisterHandler registers f to serve method requests on path.
func (s *Server) RegisterHandler(path, method string, f http.Handler) {
	s.router.Handle(method, path, gin.WrapH(f))
}

// Handler returns the underlying handler, ready to be passed to
// http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.router
}
