// Package impl contains the implementation of the application's business logic.
package impl

import (
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

func toProductOutput(product *entity.Product) *usecase.ProductOutput {
	return &usecase.ProductOutput{
		ID:          product.ID.Int64(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.Value(),
		Stock:       product.Stock,
		Category:    product.Category.Value(),
		IsActive:    product.IsActive,
		IsAvailable: product.IsAvailableForSale(),
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// toCartOutput enriches the cart's lines with the current catalog state.
// Products missing from the map are rendered unavailable rather than dropped,
// so the owner sees every line they put in.
func toCartOutput(cart *entity.Cart, products map[entity.ProductID]entity.Product) *usecase.CartOutput {
	items := cart.Items()
	views := make([]usecase.CartItemView, 0, len(items))
	totalAmount := int64(0)
	for _, item := range items {
		view := usecase.CartItemView{
			ProductID: item.ProductID.Int64(),
			Quantity:  item.Quantity.Value(),
			AddedAt:   item.AddedAt,
		}
		if product, ok := products[item.ProductID]; ok {
			view.ProductName = product.Name
			view.UnitPrice = product.Price.Value()
			view.Subtotal = product.Price.MultiplyBy(item.Quantity).Value()
			view.IsAvailable = product.IsAvailableForSale()
			totalAmount += view.Subtotal
		}
		views = append(views, view)
	}

	return &usecase.CartOutput{
		UserID:      cart.UserID.Int64(),
		Items:       views,
		TotalItems:  cart.TotalItems(),
		TotalAmount: totalAmount,
		IsEmpty:     cart.IsEmpty(),
	}
}

func toOrderOutput(order *entity.Order) *usecase.OrderOutput {
	items := make([]usecase.OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, usecase.OrderItemView{
			ProductID:       item.ProductID.Int64(),
			ProductName:     item.ProductName,
			PriceAtPurchase: item.PriceAtPurchase.Value(),
			Quantity:        item.Quantity.Value(),
			Subtotal:        item.Subtotal().Value(),
		})
	}

	out := &usecase.OrderOutput{
		ID:            order.ID.Int64(),
		Items:         items,
		RecipientName: order.Shipping.RecipientName,
		PostalCode:    order.Shipping.PostalCode.Value(),
		Prefecture:    order.Shipping.Prefecture,
		City:          order.Shipping.City,
		StreetAddress: order.Shipping.StreetAddress,
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		TotalAmount:   order.TotalAmount().Value(),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
	if order.Contact != nil {
		out.ContactEmail = order.Contact.Email.Value()
		out.ContactPhone = order.Contact.Phone
	}

	return out
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:        user.ID.Int64(),
		Name:      user.Name,
		Email:     user.Email.Value(),
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
