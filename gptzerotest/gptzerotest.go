package gptzerotest

import (
	"github.com/brianvoe/gofakeit/v6"
)

func New(seed int64) *DataGen {
	g := DataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

type DataGen struct {
	*gofakeit.Faker
}
