package validator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	PriceMax          = 10_000_000
	EstimatedPriceMax = 1_000_000

	WeightMax     = 200
	WeightWarning = 100

	AgeMax     = 50
	AgeWarning = 25

	StockMax = 100_000
)

// Numbers in messages use the grouping of the bundled language.
var printer = message.NewPrinter(language.Spanish)

// Price validates a price. Estimated prices (fields whose name contains
// "estimado") are capped at EstimatedPriceMax, other prices at PriceMax.
func Price(value string, estimated bool) Outcome {
	f, err := ParseFloat(value)
	if err != nil {
		return Valid()
	}

	max := PriceMax
	if estimated {
		max = EstimatedPriceMax
	}

	return First(
		Success("validation.price.valid", "Precio válido.", nil),
		Rule{
			Check: func() bool { return f >= 0 },
			Fail:  Invalid("validation.price.negative", "El precio no puede ser negativo.", nil),
		},
		Rule{
			Check: func() bool { return f != 0 },
			Fail:  Invalid("validation.price.zero", "El precio debe ser mayor a 0.", nil),
		},
		Rule{
			Check: func() bool { return f <= float64(max) },
			Fail: Invalid(
				"validation.price.too_high",
				printer.Sprintf("El precio es demasiado alto (máximo: $%d).", max),
				map[string]any{"max": max},
			),
		},
	)
}

// Weight validates a pet weight in kilograms. Weights above WeightWarning
// are accepted with a warning.
func Weight(value string) Outcome {
	f, err := ParseFloat(value)
	if err != nil {
		return Valid()
	}

	return First(
		Success("validation.weight.valid", "Peso válido.", nil),
		Rule{
			Check: func() bool { return f > 0 },
			Fail:  Invalid("validation.weight.not_positive", "El peso debe ser mayor a 0.", nil),
		},
		Rule{
			Check: func() bool { return f <= WeightMax },
			Fail: Invalid(
				"validation.weight.too_high",
				printer.Sprintf("El peso parece demasiado alto (máximo %d kg).", WeightMax),
				map[string]any{"max": WeightMax},
			),
		},
		Rule{
			Check: func() bool { return f <= WeightWarning },
			Fail:  Warning("validation.weight.high", "Peso alto. Verifique que sea correcto.", nil),
		},
	)
}

// Age validates a pet age in whole years. Ages above AgeWarning are
// accepted with a warning.
func Age(value string) Outcome {
	n, err := ParseInt(value)
	if err != nil {
		return Valid()
	}

	return First(
		Success("validation.age.valid", "Edad válida.", nil),
		Rule{
			Check: func() bool { return n >= 0 },
			Fail:  Invalid("validation.age.negative", "La edad no puede ser negativa.", nil),
		},
		Rule{
			Check: func() bool { return n <= AgeMax },
			Fail: Invalid(
				"validation.age.too_high",
				printer.Sprintf("La edad parece demasiado alta (máximo %d años).", AgeMax),
				map[string]any{"max": AgeMax},
			),
		},
		Rule{
			Check: func() bool { return n <= AgeWarning },
			Fail:  Warning("validation.age.high", "Edad alta. Verifique que sea correcta.", nil),
		},
	)
}

// Stock validates a product stock count.
func Stock(value string) Outcome {
	n, err := ParseInt(value)
	if err != nil {
		return Valid()
	}

	return First(
		Success("validation.stock.valid", "Stock válido.", nil),
		Rule{
			Check: func() bool { return n >= 0 },
			Fail:  Invalid("validation.stock.negative", "El stock no puede ser negativo.", nil),
		},
		Rule{
			Check: func() bool { return n <= StockMax },
			Fail: Invalid(
				"validation.stock.too_high",
				printer.Sprintf("El stock es demasiado alto (máximo %d).", StockMax),
				map[string]any{"max": StockMax},
			),
		},
	)
}
