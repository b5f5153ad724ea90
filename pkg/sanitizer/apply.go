package sanitizer

// Transform rewrites a raw field value.
type Transform func(string) string

// Apply runs value through transforms in order.
func Apply(value string, transforms ...Transform) string {
	result := value

	for _, transform := range transforms {
		if transform != nil {
			result = transform(result)
		}
	}

	return result
}

// Compose builds a reusable pipeline from transforms.
func Compose(transforms ...Transform) Transform {
	return func(value string) string {
		return Apply(value, transforms...)
	}
}
