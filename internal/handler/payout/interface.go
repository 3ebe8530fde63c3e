package payout

import (
	"github.com/gin-gonic/gin"
)

type IHandler interface {
	Create(c *gin.Context)
	Approve(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
}
