package customer

import "bookstore/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	return &entities.Customer{
		Nr:        c.Nr,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Card: entities.CreditCard{
			Number:          c.CardNumber,
			ExpirationMonth: c.CardExpirationMonth,
			ExpirationYear:  c.CardExpirationYear,
		},
	}
}
