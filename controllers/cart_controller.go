package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelhomeart/mhabackend/cart"
	"github.com/modelhomeart/mhabackend/dto"
)

// CartController exposes a per-visitor cart over HTTP. The visitor token
// travels in X-Cart-Token; a missing token gets one minted and echoed back so
// the client can persist it.
type CartController struct {
	Registry *cart.Registry
}

func NewCartController(r *cart.Registry) *CartController {
	return &CartController{Registry: r}
}

func (cc *CartController) store(c *gin.Context) *cart.Store {
	token := strings.TrimSpace(c.GetHeader("X-Cart-Token"))
	if token == "" {
		token = uuid.New().String()
	}
	c.Header("X-Cart-Token", token)
	return cc.Registry.Get(token)
}

func cartView(s *cart.Store) gin.H {
	return gin.H{
		"items":     s.Items(),
		"itemCount": s.ItemCount(),
		"subtotal":  s.Subtotal(),
		"isOpen":    s.IsOpen(),
	}
}

func (cc *CartController) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(cc.store(c)))
	}
}

// AddItem merges on productId+size; a repeated add bumps quantity instead of
// duplicating the line.
func (cc *CartController) AddItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if body.ProductID == "" || body.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if body.Quantity < 1 {
			body.Quantity = 1
		}

		s := cc.store(c)
		s.AddItem(cart.Item{
			ProductID: body.ProductID,
			Name:      body.Name,
			Size:      body.Size,
			Price:     body.Price,
			Quantity:  body.Quantity,
			Image:     body.Image,
		})
		c.JSON(http.StatusOK, cartView(s))
	}
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (cc *CartController) UpdateQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateCartQuantityDTO
		if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		s := cc.store(c)
		s.UpdateQuantity(c.Param("id"), *body.Quantity)
		c.JSON(http.StatusOK, cartView(s))
	}
}

func (cc *CartController) RemoveItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := cc.store(c)
		s.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, cartView(s))
	}
}

func (cc *CartController) ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := cc.store(c)
		s.Clear()
		c.JSON(http.StatusOK, cartView(s))
	}
}

// ToggleCart flips the open/closed panel state shared across the visitor's
// tabs.
func (cc *CartController) ToggleCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := cc.store(c)
		s.Toggle()
		c.JSON(http.StatusOK, cartView(s))
	}
}
