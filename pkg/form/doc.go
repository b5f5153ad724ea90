// Package form validates every recognised field of a form in one pass.
//
// A Validator classifies each field, skips unclassified ones, validates the
// rest and hands every outcome to a feedback.Renderer. The Result is valid
// unless at least one outcome blocks; warnings never fail a form.
//
//	v := form.NewValidator(field.NewChecker(), board)
//	res := v.Validate(ctx, f)
//	if !res.Valid() {
//		first, _ := res.FirstInvalid()
//		...
//	}
package form
