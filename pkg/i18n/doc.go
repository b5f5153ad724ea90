// Package i18n renders validation messages in the bundled language.
//
// Translations are nested YAML maps keyed by language code. The bundled
// Spanish catalogue (translations/es.yaml) is embedded into the binary and
// loaded with Bundled. Keys use dot notation ("validation.weight.high") and
// templates use named placeholders of the form %{name}.
//
//	tr, err := i18n.Bundled(ctx)
//	if err != nil {
//		return err
//	}
//	msg := tr.Outcome(i18n.DefaultLanguage, validator.Weight("150"))
//	// "Peso alto. Verifique que sea correcto."
//
// Numeric placeholder values are formatted with the grouping rules of the
// requested language, so a price cap of 1000000 renders as "1.000.000" in
// Spanish. When a key is missing the outcome's own message is used, so a
// translator never hides feedback.
//
// Only the bundled language ships with the module. Other catalogues can be
// supplied through a custom TranslationAdapter.
package i18n
