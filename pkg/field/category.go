package field

// Category is the validation category assigned to a field.
type Category int

const (
	Unclassified Category = iota
	Name
	Phone
	Email
	Price
	Weight
	Age
	AppointmentDateTime
	ProductCode
	Stock
)

var categoryNames = map[Category]string{
	Unclassified:        "unclassified",
	Name:                "name",
	Phone:               "phone",
	Email:               "email",
	Price:               "price",
	Weight:              "weight",
	Age:                 "age",
	AppointmentDateTime: "appointment",
	ProductCode:         "product_code",
	Stock:               "stock",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return categoryNames[Unclassified]
}

// Classified reports whether the category takes part in validation.
func (c Category) Classified() bool {
	return c != Unclassified
}

// Categories lists every classified category in declaration order.
func Categories() []Category {
	return []Category{Name, Phone, Email, Price, Weight, Age, AppointmentDateTime, ProductCode, Stock}
}
