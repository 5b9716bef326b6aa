package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tax id O in digit run", "ABC12O456XYZ", "ABC120456XYZ"},
		{"tax id multiple O", "XAXXO1O1O1000", "XAXX010101000"},
		{"amount O for zero", "$1,5OO.OO", "$1,500.00"},
		{"amount I for one", "$I5.00", "$15.00"},
		{"amount mixed", "15,OOO.5O", "15,000.50"},
		{"date dmy dashes", "12-05-2024", "12/05/2024"},
		{"date ymd dashes", "2024-05-12", "2024/05/12"},
		{"tax id split by space", "ABC 123456XYZ", "ABC123456XYZ"},
		{"plain words untouched", "GRACIAS POR SU COMPRA", "GRACIAS POR SU COMPRA"},
		{"word with O untouched", "OXXO EXPRESS", "OXXO EXPRESS"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.in))
		})
	}
}

func TestTextIsIdempotent(t *testing.T) {
	in := "ABC12O456XYZ TOTAL $1,5OO.OO 12-05-2024"
	once := Text(in)
	assert.Equal(t, once, Text(once))
}
