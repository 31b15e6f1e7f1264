package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/smallbiznis/ordercast/internal/order/domain"
)

type createOrderRequest struct {
	Items       []orderdomain.LineItem `json:"items"`
	TotalAmount int64                  `json:"total_amount"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateRequest{
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	orders := s.orderSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": orders})
}
