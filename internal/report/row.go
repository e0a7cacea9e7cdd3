package report

import (
	"fmt"

	"trackexpense/internal/models"
	"trackexpense/internal/reporterror"

	"github.com/shopspring/decimal"
)

// Row is one editable line of the report grid.
type Row struct {
	ID          string
	Date        string
	Destination string
	Distance    decimal.Decimal
	Fuel        decimal.Decimal
	Parking     decimal.Decimal
	Meals       decimal.Decimal
	Hotels      decimal.Decimal
	Transport   decimal.Decimal
	Misc        decimal.Decimal
	Total       decimal.Decimal
	Manual      bool
}

// MonetarySum adds the six monetary cells. Distance is not money and is left out.
func (r Row) MonetarySum() decimal.Decimal {
	return models.Sum(r.Fuel, r.Parking, r.Meals, r.Hotels, r.Transport, r.Misc)
}

// RecomputeTotal sets Total from the monetary cells.
func (r *Row) RecomputeTotal() {
	r.Total = r.MonetarySum()
}

func (r *Row) cell(col Column) *decimal.Decimal {
	switch col {
	case ColumnFuel:
		return &r.Fuel
	case ColumnParking:
		return &r.Parking
	case ColumnMeals:
		return &r.Meals
	case ColumnHotels:
		return &r.Hotels
	case ColumnTransport:
		return &r.Transport
	case ColumnMisc:
		return &r.Misc
	}
	return nil
}

// Field names an editable cell of a Row.
type Field string

// The nine editable fields.
const (
	FieldDate        Field = "date"
	FieldDestination Field = "destination"
	FieldDistance    Field = "distance"
	FieldFuel        Field = "fuel"
	FieldParking     Field = "parking"
	FieldMeals       Field = "meals"
	FieldHotels      Field = "hotels"
	FieldTransport   Field = "transport"
	FieldMisc        Field = "misc"
)

var fieldColumns = map[Field]Column{
	FieldFuel:      ColumnFuel,
	FieldParking:   ColumnParking,
	FieldMeals:     ColumnMeals,
	FieldHotels:    ColumnHotels,
	FieldTransport: ColumnTransport,
	FieldMisc:      ColumnMisc,
}

// Fields returns the editable fields in ledger column order.
func Fields() []Field {
	return []Field{
		FieldDate, FieldDestination, FieldDistance, FieldFuel, FieldParking,
		FieldMeals, FieldHotels, FieldTransport, FieldMisc,
	}
}

// ParseField validates a field name.
func ParseField(name string) (Field, error) {
	f := Field(name)
	switch f {
	case FieldDate, FieldDestination, FieldDistance:
		return f, nil
	}
	if _, ok := fieldColumns[f]; ok {
		return f, nil
	}
	return "", &reporterror.UnknownFieldError{Field: name}
}

// IsText reports whether the field holds free text rather than a number.
func (f Field) IsText() bool {
	return f == FieldDate || f == FieldDestination
}

func (r Row) String() string {
	return fmt.Sprintf("%s %s %q total=%s", r.ID, r.Date, r.Destination, r.Total.StringFixed(2))
}
