// Package field classifies form fields by naming convention and dispatches
// them to the matching validator.
//
// A field is reached through a Handle: a borrowed reference to one live input
// control exposing its name, its input kind (text, email, number, ...) and its
// current raw value. Handles are never copied or persisted by this package.
//
// The Classifier maps a field's name and kind to exactly one Category by
// walking an explicit, ordered list of rules. The first matching rule wins.
// The default order is:
//
//  1. kind "email"                       → Email
//  2. name contains "nombre"             → Name
//  3. name contains "telefono"           → Phone
//  4. name contains "precio"             → Price
//  5. name is "peso", "edad", "fecha_hora", "codigo" or "stock"
//     → Weight, Age, AppointmentDateTime, ProductCode, Stock
//  6. anything else                      → Unclassified
//
// A Checker combines the classifier with the validator set and a clock:
//
//	checker := field.NewChecker()
//	cat, out := checker.Check(field.NewInput("peso", "number", "150"))
//	// cat == field.Weight, out.Severity == validator.SeverityWarning
package field
