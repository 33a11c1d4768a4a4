package customer

type CustomerDB struct {
	Nr                  int64
	FirstName           string
	LastName            string
	Email               string
	CardNumber          string
	CardExpirationMonth int
	CardExpirationYear  int
}
