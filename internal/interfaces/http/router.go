package http

import (
	"github.com/gin-gonic/gin"
)

// Router owns the gin engine and the container it routes to.
type Router struct {
	engine *gin.Engine
	c      *Container
}

func NewRouter(c *Container) *Router {
	return &Router{
		engine: c.engine,
		c:      c,
	}
}
