package fakeapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"adminconsole/internal/domain/entity"
	"adminconsole/pkg/errors"
	"adminconsole/pkg/response"
	"adminconsole/pkg/utils"
)

func (s *Server) listOrders(c echo.Context) error {
	q := c.QueryParams()
	status := q.Get("status")
	customer := q.Get("customer")
	from, _ := time.Parse(time.RFC3339, q.Get("from"))
	to, _ := time.Parse(time.RFC3339, q.Get("to"))
	page := utils.ParsePagination(q)

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []entity.Order{}
	for _, o := range s.orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		if customer != "" && o.Customer.ID != customer && o.Customer.Username != customer && o.Customer.Email != customer {
			continue
		}
		if !from.IsZero() && o.CreatedAt.Before(from) || !to.IsZero() && o.CreatedAt.After(to) {
			continue
		}
		matched = append(matched, o)
	}

	return response.Success(c, map[string]interface{}{
		"orders": paginate(matched, page),
		"total":  len(matched),
	})
}

func (s *Server) getOrder(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.orders, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Order", nil))
	}
	return response.Success(c, s.orders[i])
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.orders, c.Param("id"))
	if i < 0 {
		return response.Error(c, errors.NotFound("Order", nil))
	}
	s.orders[i].Status = req.Status
	return response.Success(c, map[string]interface{}{"order": s.orders[i]})
}
