package entities

type Customer struct {
	Nr        int64
	FirstName string
	LastName  string
	Email     string
	Card      CreditCard
}

type CreditCard struct {
	Number          string
	ExpirationMonth int
	ExpirationYear  int
}
